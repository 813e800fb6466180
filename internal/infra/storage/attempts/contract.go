package attempts

import "github.com/m04kA/SMC-DoctorBooking/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics (*sql.DB или *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
