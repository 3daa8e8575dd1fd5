package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

func tod(s string) types.TimeOfDay {
	t, err := types.ParseIntervalEnd(s)
	if err != nil {
		panic(err)
	}
	return t
}

func workday() []domain.TimeInterval {
	return []domain.TimeInterval{{Start: tod("09:00"), End: tod("17:00")}}
}

func starts(slots []domain.Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.Start.String()
	}
	return result
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots(workday(), nil, 30, 0)

	require.Len(t, slots, 16)
	assert.Equal(t, domain.Slot{Start: tod("09:00"), End: tod("09:30"), Available: true}, slots[0])
	assert.Equal(t, domain.Slot{Start: tod("16:30"), End: tod("17:00"), Available: true}, slots[15])
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 30, s.End.Minutes()-s.Start.Minutes())
	}
}

func TestGenerateSlots_WithBuffer(t *testing.T) {
	slots := GenerateSlots(workday(), nil, 30, 10)

	// 09:00, 09:40, ... 16:20; следующий кандидат 17:00 уже не помещается
	require.Len(t, slots, 12)
	assert.Equal(t, domain.Slot{Start: tod("09:00"), End: tod("09:30"), Available: true}, slots[0])
	assert.Equal(t, domain.Slot{Start: tod("09:40"), End: tod("10:10"), Available: true}, slots[1])
	assert.Equal(t, domain.Slot{Start: tod("16:20"), End: tod("16:50"), Available: true}, slots[11])
}

func TestGenerateSlots_ReservedExcluded(t *testing.T) {
	slots := GenerateSlots(workday(), []types.TimeOfDay{tod("10:00")}, 30, 0)

	require.Len(t, slots, 15)
	assert.NotContains(t, starts(slots), "10:00")
	assert.Contains(t, starts(slots), "09:30")
	assert.Contains(t, starts(slots), "10:30")
}

func TestGenerateSlots_ReservedDoesNotShiftGrid(t *testing.T) {
	intervals := []domain.TimeInterval{{Start: tod("09:00"), End: tod("11:00")}}

	slots := GenerateSlots(intervals, []types.TimeOfDay{tod("09:40")}, 30, 10)

	assert.Equal(t, []string{"09:00", "10:20"}, starts(slots))
}

func TestGenerateSlots_ReservedOffGridIgnored(t *testing.T) {
	slots := GenerateSlots(workday(), []types.TimeOfDay{tod("10:15")}, 30, 0)
	assert.Len(t, slots, 16)
}

func TestGenerateSlots_EmptyAndDegenerate(t *testing.T) {
	tests := []struct {
		name      string
		intervals []domain.TimeInterval
		duration  int
	}{
		{name: "day off", intervals: nil, duration: 30},
		{name: "empty list", intervals: []domain.TimeInterval{}, duration: 30},
		{name: "end equals start", intervals: []domain.TimeInterval{{Start: tod("09:00"), End: tod("09:00")}}, duration: 30},
		{name: "end before start", intervals: []domain.TimeInterval{{Start: tod("12:00"), End: tod("09:00")}}, duration: 30},
		{name: "interval shorter than slot", intervals: []domain.TimeInterval{{Start: tod("09:00"), End: tod("09:20")}}, duration: 30},
		{name: "zero duration", intervals: workday(), duration: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.intervals, nil, tt.duration, 0)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_MultipleIntervalsInOrder(t *testing.T) {
	intervals := []domain.TimeInterval{
		{Start: tod("09:00"), End: tod("10:00")},
		{Start: tod("14:00"), End: tod("15:00")},
	}

	slots := GenerateSlots(intervals, nil, 30, 0)

	assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, starts(slots))
}

func TestGenerateSlots_EndOfDay(t *testing.T) {
	intervals := []domain.TimeInterval{{Start: tod("23:00"), End: tod("24:00")}}

	slots := GenerateSlots(intervals, nil, 30, 0)

	require.Len(t, slots, 2)
	assert.Equal(t, "24:00", slots[1].End.String())
}

func TestGenerateSlots_Coverage(t *testing.T) {
	intervals := []domain.TimeInterval{
		{Start: tod("08:15"), End: tod("12:05")},
		{Start: tod("13:00"), End: tod("18:00")},
	}
	reserved := []types.TimeOfDay{tod("08:15"), tod("13:45")}

	for _, duration := range []int{5, 15, 20, 45, 60} {
		for _, buffer := range []int{0, 5, 10} {
			slots := GenerateSlots(intervals, reserved, duration, buffer)
			for _, s := range slots {
				inside := false
				for _, iv := range intervals {
					if s.Start >= iv.Start && s.End <= iv.End {
						inside = true
						assert.Zero(t, (s.Start.Minutes()-iv.Start.Minutes())%(duration+buffer))
					}
				}
				assert.True(t, inside, "slot %s-%s outside template", s.Start, s.End)
				assert.NotContains(t, reserved, s.Start)
			}
		}
	}
}
