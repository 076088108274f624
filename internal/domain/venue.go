package domain

// VenueCode identifies one of the studio's fixed venues
type VenueCode string

const (
	// VenueStudio основная студия
	VenueStudio VenueCode = "studio"

	// VenueSanctuary сад-санктуарий, используется для сессий вт/чт
	VenueSanctuary VenueCode = "sanctuary"
)

// Venue represents a physical location where sessions are held
type Venue struct {
	Code    VenueCode
	Name    string
	Address string
	MapLink string
}

// Фиксированный набор площадок студии. Новые площадки не добавляются
// через БД — расписание жёстко привязано к этим двум локациям
var venues = map[VenueCode]Venue{
	VenueStudio: {
		Code:    VenueStudio,
		Name:    "Serenity Sound Studio",
		Address: "3A Che Lan Vien Street, Da Nang",
		MapLink: "https://maps.google.com/?q=3A+Che+Lan+Vien+Street+Da+Nang",
	},
	VenueSanctuary: {
		Code:    VenueSanctuary,
		Name:    "Serenity Garden Sanctuary",
		Address: "52 Tran Van Du Street, Da Nang",
		MapLink: "https://maps.google.com/?q=52+Tran+Van+Du+Street+Da+Nang",
	},
}

// VenueByCode returns the venue for a known code
func VenueByCode(code VenueCode) (Venue, bool) {
	v, ok := venues[code]
	return v, ok
}
