package domain

import "github.com/m04kA/MedConnect-AppointmentService/pkg/types"

// Slot свободный интервал для записи
type Slot struct {
	Start     types.TimeOfDay
	End       types.TimeOfDay
	Available bool
}

// DayAvailability свободные слоты врача на дату
type DayAvailability struct {
	Date         string
	DayName      Weekday
	Slots        []Slot
	SlotDuration int
	Location     string
}
