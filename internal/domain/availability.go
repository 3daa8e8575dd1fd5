package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// TimeInterval интервал приема внутри дня, [Start, End)
type TimeInterval struct {
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// Duration длина интервала в минутах
func (i TimeInterval) Duration() int {
	return i.End.Minutes() - i.Start.Minutes()
}

// WeeklySchedule интервалы приема по дням недели.
// Отсутствующий день и пустой список означают выходной.
type WeeklySchedule map[Weekday][]TimeInterval

// Day интервалы дня (nil для выходного)
func (s WeeklySchedule) Day(day Weekday) []TimeInterval {
	if s == nil {
		return nil
	}
	return s[day]
}

// MarshalJSON всегда отдает все семь дней, выходные как пустые списки
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[Weekday][]TimeInterval, len(Weekdays))
	for _, day := range Weekdays {
		intervals := s.Day(day)
		if intervals == nil {
			intervals = []TimeInterval{}
		}
		out[day] = intervals
	}
	return json.Marshal(out)
}

// UnmarshalJSON отклоняет неизвестные дни недели
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string][]TimeInterval
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	result := make(WeeklySchedule, len(raw))
	for name, intervals := range raw {
		day, err := ParseWeekday(name)
		if err != nil {
			return err
		}
		result[day] = intervals
	}
	*s = result
	return nil
}

// Value реализует driver.Valuer (JSONB)
func (s WeeklySchedule) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan реализует sql.Scanner (JSONB)
func (s *WeeklySchedule) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*s = WeeklySchedule{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into schedule", ErrInvalidSchedule, src)
	}
	return json.Unmarshal(data, s)
}

// Validate проверяет, что интервалы каждого дня непусты, упорядочены и не пересекаются
func (s WeeklySchedule) Validate() error {
	for day, intervals := range s {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
		if err := ValidateDayIntervals(intervals); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

// ValidateDayIntervals проверяет интервалы одного дня
func ValidateDayIntervals(intervals []TimeInterval) error {
	for i, interval := range intervals {
		if !interval.Start.Before(interval.End) {
			return fmt.Errorf("%w: interval %s-%s must start before it ends",
				ErrInvalidSchedule, interval.Start, interval.End)
		}
		if i > 0 && interval.Start.Before(intervals[i-1].End) {
			return fmt.Errorf("%w: interval %s-%s overlaps or precedes %s-%s",
				ErrInvalidSchedule, interval.Start, interval.End, intervals[i-1].Start, intervals[i-1].End)
		}
	}
	return nil
}

// SortIntervals упорядочивает интервалы по началу (на месте)
func SortIntervals(intervals []TimeInterval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
}

// DoctorAvailability недельный шаблон расписания врача
type DoctorAvailability struct {
	ID           int64
	DoctorID     int64
	Schedule     WeeklySchedule
	SlotDuration int // минуты
	BufferTime   int // минуты
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultAvailability шаблон по умолчанию: пн-пт 09:00-17:00, слоты по 30 минут, без перерыва
func DefaultAvailability(doctorID int64) *DoctorAvailability {
	workday := func() []TimeInterval {
		return []TimeInterval{{Start: types.NewTimeOfDay(9, 0), End: types.NewTimeOfDay(17, 0)}}
	}

	return &DoctorAvailability{
		DoctorID: doctorID,
		Schedule: WeeklySchedule{
			Monday:    workday(),
			Tuesday:   workday(),
			Wednesday: workday(),
			Thursday:  workday(),
			Friday:    workday(),
			Saturday:  {},
			Sunday:    {},
		},
		SlotDuration: DefaultSlotDurationMinutes,
		BufferTime:   DefaultBufferTimeMinutes,
		Location:     DefaultLocation,
	}
}

// Validate проверяет шаблон перед сохранением
func (a *DoctorAvailability) Validate() error {
	if a.SlotDuration < MinSlotDurationMinutes || a.SlotDuration > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidSchedule, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if a.BufferTime < MinBufferTimeMinutes || a.BufferTime > MaxBufferTimeMinutes {
		return fmt.Errorf("%w: bufferTime must be between %d and %d minutes",
			ErrInvalidSchedule, MinBufferTimeMinutes, MaxBufferTimeMinutes)
	}
	if len(a.Location) > MaxLocationLength {
		return fmt.Errorf("%w: location is too long", ErrInvalidSchedule)
	}
	return a.Schedule.Validate()
}

// InPersonLocation место очного приема с подстановкой значения по умолчанию
func (a *DoctorAvailability) InPersonLocation() string {
	if a == nil || strings.TrimSpace(a.Location) == "" {
		return FallbackInPersonLocation
	}
	return a.Location
}
