package domain

// Vehicle машина с закреплённой бригадой клинеров
// Клинеры одной машины ездят на заказы вместе: для заказа с несколькими
// клинерами все участники выбираются из одной машины.
type Vehicle struct {
	ID       int64
	Name     string
	Cleaners []Cleaner
}

// HasCapacity возвращает true, если в машину можно добавить ещё одного клинера
func (v *Vehicle) HasCapacity() bool {
	return len(v.Cleaners) < MaxCleanersPerVehicle
}

// Cleaner клинер, закреплённый ровно за одной машиной
type Cleaner struct {
	ID        int64
	Name      string
	VehicleID int64
}
