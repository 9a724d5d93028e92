package handlers

// HandlerBundle groups the handler sets wired in main and consumed by the
// route registration.
type HandlerBundle struct {
	Auth          *AuthHandler
	Dashboard     *DashboardHandler
	Profile       *ProfileHandler
	Benefits      *BenefitsHandler
	Tariff        *TariffHandler
	Market        *MarketHandler
	Country       *CountryHandler
	Ratings       *RatingHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
}
