package domain

import "time"

// NotificationType вид уведомления
type NotificationType string

const (
	NotificationAppointmentRequest   NotificationType = "APPOINTMENT_REQUEST"
	NotificationAppointmentConfirmed NotificationType = "APPOINTMENT_CONFIRMED"
	NotificationAppointmentRejected  NotificationType = "APPOINTMENT_REJECTED"
	NotificationAppointmentCancelled NotificationType = "APPOINTMENT_CANCELLED"
)

// Notification уведомление пользователю; доставка через опрос
type Notification struct {
	ID                   int64
	RecipientID          int64
	SenderID             int64
	Type                 NotificationType
	Message              string
	RelatedAppointmentID *int64
	Read                 bool
	CreatedAt            time.Time
}
