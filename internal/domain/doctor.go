package domain

// Doctor карточка врача из внешнего API
type Doctor struct {
	ID          string
	Name        string
	Speciality  string
	Degree      string
	Experience  string
	About       string
	Fees        float64
	Image       string
	Available   bool
	SlotsBooked BookedSlotMap
}
