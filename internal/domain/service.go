package domain

// ServiceType classifies a session
type ServiceType string

const (
	// ServiceGroupSoundBath групповая саунд-хилинг сессия, цена за гостя
	ServiceGroupSoundBath ServiceType = "group-sound-bath"

	// ServiceTherapyOneOnOne индивидуальная сессия 1:1, фиксированная цена
	ServiceTherapyOneOnOne ServiceType = "therapy-1-1"
)

// IsValid returns true if the service type is known
func (s ServiceType) IsValid() bool {
	return s == ServiceGroupSoundBath || s == ServiceTherapyOneOnOne
}

// PricingUnit defines how a service offering is priced
type PricingUnit string

const (
	PricePerGuest   PricingUnit = "per_guest"
	PricePerSession PricingUnit = "per_session"
)

// ServiceOffering describes a bookable service and its pricing model
type ServiceOffering struct {
	Type        ServiceType
	DisplayName string
	BasePrice   int64 // VND; базовая цена в основной студии
	PricingUnit PricingUnit
}

// Предложения студии. Цены в VND, поэтому int64 без дробной части
var offerings = map[ServiceType]ServiceOffering{
	ServiceGroupSoundBath: {
		Type:        ServiceGroupSoundBath,
		DisplayName: "Group Sound Bath",
		BasePrice:   350000,
		PricingUnit: PricePerGuest,
	},
	ServiceTherapyOneOnOne: {
		Type:        ServiceTherapyOneOnOne,
		DisplayName: "1:1 Sound Therapy",
		BasePrice:   900000,
		PricingUnit: PricePerSession,
	},
}

// OfferingByType returns the service offering for a known service type
func OfferingByType(t ServiceType) (ServiceOffering, bool) {
	o, ok := offerings[t]
	return o, ok
}
