package entities

// Service is the kind of work a customer can order. Each service maps to a
// fixed price used when a quotation is generated for the order.
type Service string

const (
	ServiceWebSite    Service = "web_site"
	ServiceMobileApp  Service = "mobile_app"
	ServiceDesktopApp Service = "desktop_app"
)

var servicePrices = map[Service]int{
	ServiceWebSite:    5000,
	ServiceMobileApp:  8000,
	ServiceDesktopApp: 10000,
}

func (s Service) IsValid() bool {
	_, ok := servicePrices[s]
	return ok
}

// Price returns the fixed quotation price for the service tier.
// Returns 0 for an unknown service.
func (s Service) Price() int {
	return servicePrices[s]
}
