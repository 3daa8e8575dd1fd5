package models

import (
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// NotificationResponse уведомление пользователя
type NotificationResponse struct {
	ID                   int64     `json:"id"`
	SenderID             int64     `json:"senderId"`
	Type                 string    `json:"type"`
	Message              string    `json:"message"`
	RelatedAppointmentID *int64    `json:"relatedAppointmentId,omitempty"`
	IsRead               bool      `json:"isRead"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NotificationListResponse список уведомлений, новые сверху
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// UnreadCountResponse число непрочитанных уведомлений
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// MarkAllReadResponse результат отметки всех уведомлений
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	return &NotificationResponse{
		ID:                   n.ID,
		SenderID:             n.SenderID,
		Type:                 string(n.Type),
		Message:              n.Message,
		RelatedAppointmentID: n.RelatedAppointmentID,
		IsRead:               n.Read,
		CreatedAt:            n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		if dto := FromDomainNotification(n); dto != nil {
			resp.Notifications = append(resp.Notifications, *dto)
		}
	}

	return resp
}
