package navigation

const ActionLogout = "logout"

var primaryItems = []Item{
	{Label: "HOME", Path: "/"},
	{Label: "DOCTORS", Path: "/doctors"},
	{Label: "ABOUT", Path: "/about"},
	{Label: "CONTACT", Path: "/contact"},
	{Label: "BLOGS", Path: "/blogs"},
}

var accountItems = []Item{
	{Label: "My Profile", Path: "/profile"},
	{Label: "My Appointments", Path: "/my-appointments"},
	{Label: "Logout", Path: "/", Action: ActionLogout},
}

var loginCTA = Item{Label: "Create account", Path: "/login"}

// Service собирает меню навигации
type Service struct{}

// NewService создает новый экземпляр сервиса
func NewService() *Service {
	return &Service{}
}

// Build возвращает меню; пункты аккаунта доступны только с токеном сессии
func (s *Service) Build(authenticated bool) *Menu {
	menu := &Menu{
		Authenticated: authenticated,
		Primary:       append([]Item(nil), primaryItems...),
	}

	if authenticated {
		menu.Account = append([]Item(nil), accountItems...)
		return menu
	}

	cta := loginCTA
	menu.CallToAction = &cta
	return menu
}
