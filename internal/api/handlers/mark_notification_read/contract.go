package mark_notification_read

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
)

type NotificationService interface {
	MarkRead(ctx context.Context, caller auth.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
