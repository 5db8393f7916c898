package vehicle

import "github.com/m04kA/SMC-CleaningService/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx (см. pkg/txmanager)
type DBExecutor = txmanager.DBExecutor
