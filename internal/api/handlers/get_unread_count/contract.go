package get_unread_count

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/notifications/models"
)

type NotificationService interface {
	UnreadCount(ctx context.Context, caller auth.Identity) (*models.UnreadCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
