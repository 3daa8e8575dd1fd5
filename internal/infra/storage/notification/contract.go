package notification

import "github.com/m04kA/MedConnect-AppointmentService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
