package navigation

// Item пункт меню
type Item struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Action string `json:"action,omitempty"` // Действие на клиенте вместо перехода (logout)
}

// Menu навигация для текущего состояния сессии
type Menu struct {
	Authenticated bool   `json:"authenticated"`
	Primary       []Item `json:"primary"`
	Account       []Item `json:"account,omitempty"` // Выпадающее меню пользователя
	CallToAction  *Item  `json:"callToAction,omitempty"`
}
