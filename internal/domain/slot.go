package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookedSlotMap занятые слоты врача: ключ даты (D_M_YYYY) -> список меток времени
// Приходит из внешнего API и никогда не изменяется генератором
type BookedSlotMap map[string][]string

// IsBooked проверяет, занята ли метка времени на указанную дату
// Сравнение без учета регистра и пробелов по краям
func (m BookedSlotMap) IsBooked(dateKey, timeLabel string) bool {
	for _, booked := range m[dateKey] {
		if strings.EqualFold(strings.TrimSpace(booked), timeLabel) {
			return true
		}
	}
	return false
}

// ParseBookedSlotMap разбирает поле slots_booked из ответа API
// Данные неожиданной формы трактуются как "нет конфликтующих бронирований":
// значения, не являющиеся массивами, и элементы, не являющиеся строками, пропускаются
func ParseBookedSlotMap(raw json.RawMessage) BookedSlotMap {
	result := BookedSlotMap{}
	if len(raw) == 0 {
		return result
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return result
	}

	for key, value := range entries {
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil {
			continue
		}
		labels := make([]string, 0, len(items))
		for _, item := range items {
			var label string
			if err := json.Unmarshal(item, &label); err != nil {
				continue
			}
			labels = append(labels, label)
		}
		if len(labels) > 0 {
			result[key] = labels
		}
	}

	return result
}

// Candidate один свободный слот
type Candidate struct {
	Date    time.Time // Начало слота
	DateKey string    // D_M_YYYY
	Time    string    // Метка времени, например "10:30 AM"
}

// DateBucket свободные слоты одной календарной даты в порядке возрастания времени
type DateBucket struct {
	Date       time.Time // Полночь даты в часовом поясе генерации
	DateKey    string
	Weekday    string // SUN..SAT
	Candidates []Candidate
}

// SlotWindow результат генерации: только непустые даты в порядке дней
type SlotWindow struct {
	Buckets     []DateBucket
	ScannedDays int  // Сколько дней просмотрено
	Truncated   bool // Горизонт исчерпан раньше, чем набрано целевое число дат
}

// TotalSlots возвращает общее число свободных слотов в окне
func (w SlotWindow) TotalSlots() int {
	total := 0
	for _, b := range w.Buckets {
		total += len(b.Candidates)
	}
	return total
}

// BusinessHours часы приема в минутах от начала суток
type BusinessHours struct {
	OpenMinutes  int
	CloseMinutes int
	StepMinutes  int
}

// DefaultBusinessHours 10:00-21:00 с шагом 30 минут
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenMinutes:  DefaultOpenMinutes,
		CloseMinutes: DefaultCloseMinutes,
		StepMinutes:  DefaultSlotStepMinutes,
	}
}

var weekdayLabels = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// WeekdayLabel короткое имя дня недели, как в полосе выбора даты
func WeekdayLabel(t time.Time) string {
	return weekdayLabels[t.Weekday()]
}

// DateKey кодирует дату как D_M_YYYY без ведущих нулей
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year())
}

// ParseDateKey разбирает ключ D_M_YYYY в полночь указанного часового пояса
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		// Ведущие нули и знаки не допускаются - ключ должен совпадать с внешним форматом
		if p == "" || p[0] == '0' || p[0] == '+' || p[0] == '-' {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date нормализует 31_2 в март, такие ключи отклоняем
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return t, nil
}

// ParseTimeLabel проверяет метку времени в заданном формате и возвращает минуты от начала суток
func ParseTimeLabel(label, layout string) (int, error) {
	parsed, err := time.Parse(layout, strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}
