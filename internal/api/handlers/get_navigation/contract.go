package get_navigation

import "github.com/m04kA/SMC-DoctorBooking/internal/service/navigation"

type NavigationService interface {
	Build(authenticated bool) *navigation.Menu
}
