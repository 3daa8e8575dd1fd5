package get_available_slots

import (
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// GenerateSlots нарезает интервалы дня на слоты длиной duration с перерывом buffer.
//
// Курсор внутри интервала сдвигается на duration+buffer после каждого кандидата,
// независимо от того, попал он в результат или был занят. Кандидат допустим,
// пока cursor+duration <= end. Интервал с end <= start не дает слотов.
// Слоты, чье начало есть в reserved, пропускаются.
func GenerateSlots(intervals []domain.TimeInterval, reserved []types.TimeOfDay, duration, buffer int) []domain.Slot {
	slots := make([]domain.Slot, 0)
	if duration <= 0 {
		return slots
	}
	if buffer < 0 {
		buffer = 0
	}

	taken := make(map[types.TimeOfDay]struct{}, len(reserved))
	for _, start := range reserved {
		taken[start] = struct{}{}
	}

	step := duration + buffer
	for _, interval := range intervals {
		for cursor := interval.Start; cursor.Add(duration) <= interval.End; cursor = cursor.Add(step) {
			if _, booked := taken[cursor]; booked {
				continue
			}
			slots = append(slots, domain.Slot{
				Start:     cursor,
				End:       cursor.Add(duration),
				Available: true,
			})
		}
	}

	return slots
}
