package get_available_slots

import (
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Success      bool               `json:"success"`
	Availability DayAvailabilityDTO `json:"availability"`
}

// DayAvailabilityDTO свободные слоты на дату
type DayAvailabilityDTO struct {
	Date         string          `json:"date"`
	DayName      string          `json:"dayName"`
	Slots        []AvailableSlot `json:"slots"`
	SlotDuration int             `json:"slotDuration"`
	Location     string          `json:"location"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "09:30"
	Available bool   `json:"available"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(caller auth.Identity, doctorID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Caller:   caller,
		DoctorID: doctorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, AvailableSlot{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Available: slot.Available,
		})
	}

	return &AvailabilityResponse{
		Success: true,
		Availability: DayAvailabilityDTO{
			Date:         resp.Date,
			DayName:      string(resp.DayName),
			Slots:        slots,
			SlotDuration: resp.SlotDuration,
			Location:     resp.Location,
		},
	}
}
