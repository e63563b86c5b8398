package professional

import "github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
