package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeOfDay время суток в минутах от полуночи.
// На границе сервиса (JSON, БД) кодируется строкой "HH:MM" в 24-часовом формате.
type TimeOfDay int

// EndOfDay конец суток "24:00", наибольшее допустимое значение конца интервала
const EndOfDay TimeOfDay = minutesPerDay

// ParseTimeOfDay парсит строку "HH:MM" (00:00 - 23:59)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := parse(s)
	if err != nil {
		return 0, err
	}
	if t >= minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	return t, nil
}

// ParseIntervalEnd парсит конец интервала, допускает "24:00" как конец суток
func ParseIntervalEnd(s string) (TimeOfDay, error) {
	t, err := parse(s)
	if err != nil {
		return 0, err
	}
	if t > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	return t, nil
}

func parse(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	digits := [4]byte{s[0], s[1], s[3], s[4]}
	for _, d := range digits {
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')

	if minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	if hours > 24 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return TimeOfDay(hours*minutesPerHour + minutes), nil
}

// NewTimeOfDay создает время из часов и минут
func NewTimeOfDay(hours, minutes int) TimeOfDay {
	return TimeOfDay(hours*minutesPerHour + minutes)
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Add возвращает время, сдвинутое на указанное количество минут.
// Результат может выйти за пределы суток, поэтому сравнивать его нужно до форматирования.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String форматирует время в "HH:MM" с ведущими нулями
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/minutesPerHour, int(t)%minutesPerHour)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := ParseIntervalEnd(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer, в БД время хранится как VARCHAR(5)
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}

	parsed, err := ParseIntervalEnd(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
