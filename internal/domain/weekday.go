package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday название дня недели в шаблоне расписания
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays дни недели в порядке time.Weekday (воскресенье = 0)
var Weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf день недели календарной даты
func WeekdayOf(date time.Time) Weekday {
	return Weekdays[date.Weekday()]
}

// ParseWeekday разбирает название дня без учета регистра
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !day.IsValid() {
		return "", fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, s)
	}
	return day, nil
}

func (d Weekday) IsValid() bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Title имя дня с заглавной буквы (для сообщений)
func (d Weekday) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}
