package domain

import "time"

// ConnectionStatus статус связи пациент-врач
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
	ConnectionRevoked  ConnectionStatus = "revoked"
)

// Connection связь пациента с врачом; только accepted открывает доступ к записи
type Connection struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	Status    ConnectionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Connection) IsAccepted() bool {
	return c.Status == ConnectionAccepted
}
