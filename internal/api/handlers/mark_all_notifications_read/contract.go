package mark_all_notifications_read

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/notifications/models"
)

type NotificationService interface {
	MarkAllRead(ctx context.Context, caller auth.Identity) (*models.MarkAllReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
