package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// Generator строит скользящее окно свободных слотов врача
// Чистая функция от (now, занятые слоты, целевое число дат): без I/O и без чтения текущего времени
type Generator struct {
	hours          domain.BusinessHours
	maxHorizonDays int
	labelLayout    string
}

// NewGenerator создает генератор
// maxHorizonDays <= 0 заменяется значением по умолчанию: окно всегда ограничено
func NewGenerator(hours domain.BusinessHours, maxHorizonDays int, labelLayout string) *Generator {
	if maxHorizonDays <= 0 {
		maxHorizonDays = domain.DefaultMaxHorizonDays
	}
	if labelLayout == "" {
		labelLayout = domain.TimeLabelLayout
	}
	return &Generator{
		hours:          hours,
		maxHorizonDays: maxHorizonDays,
		labelLayout:    labelLayout,
	}
}

// Generate генерирует окно с часами приема по умолчанию (10:00-21:00, шаг 30 минут)
func Generate(now time.Time, booked domain.BookedSlotMap, targetBucketCount int) domain.SlotWindow {
	return NewGenerator(domain.DefaultBusinessHours(), domain.DefaultMaxHorizonDays, domain.TimeLabelLayout).
		Generate(now, booked, targetBucketCount)
}

// Generate возвращает до targetBucketCount непустых дат начиная с даты now
//
// Сегодня слоты начинаются со следующей границы шага строго после now (не раньше открытия),
// в остальные дни - с открытия. Пустой день отбрасывается, и окно расширяется на день.
// Если горизонт исчерпан раньше, возвращается укороченное окно с Truncated = true.
func (g *Generator) Generate(now time.Time, booked domain.BookedSlotMap, targetBucketCount int) domain.SlotWindow {
	window := domain.SlotWindow{Buckets: []domain.DateBucket{}}
	if targetBucketCount <= 0 || g.hours.StepMinutes <= 0 {
		return window
	}

	loc := now.Location()
	year, month, day := now.Date()

	for offset := 0; len(window.Buckets) < targetBucketCount; offset++ {
		if offset >= g.maxHorizonDays {
			window.Truncated = true
			break
		}
		window.ScannedDays++

		midnight := time.Date(year, month, day+offset, 0, 0, 0, 0, loc)

		startMinutes := g.hours.OpenMinutes
		if offset == 0 {
			startMinutes = g.firstStartMinutes(now)
		}

		candidates := g.dayCandidates(midnight, startMinutes, booked)
		if len(candidates) == 0 {
			continue
		}

		window.Buckets = append(window.Buckets, domain.DateBucket{
			Date:       midnight,
			DateKey:    domain.DateKey(midnight),
			Weekday:    domain.WeekdayLabel(midnight),
			Candidates: candidates,
		})
	}

	return window
}

// firstStartMinutes следующая граница шага строго после now, выровненная от времени открытия
func (g *Generator) firstStartMinutes(now time.Time) int {
	current := now.Hour()*60 + now.Minute()
	if current < g.hours.OpenMinutes {
		return g.hours.OpenMinutes
	}
	steps := (current-g.hours.OpenMinutes)/g.hours.StepMinutes + 1
	return g.hours.OpenMinutes + steps*g.hours.StepMinutes
}

// dayCandidates слоты одной даты в [start, close) за вычетом занятых
func (g *Generator) dayCandidates(midnight time.Time, startMinutes int, booked domain.BookedSlotMap) []domain.Candidate {
	year, month, day := midnight.Date()
	dateKey := domain.DateKey(midnight)

	candidates := make([]domain.Candidate, 0)
	for minutes := startMinutes; minutes < g.hours.CloseMinutes; minutes += g.hours.StepMinutes {
		at := time.Date(year, month, day, 0, minutes, 0, 0, midnight.Location())
		label := at.Format(g.labelLayout)

		if booked.IsBooked(dateKey, label) {
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Date:    at,
			DateKey: dateKey,
			Time:    label,
		})
	}

	return candidates
}
