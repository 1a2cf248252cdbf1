// internal/domain/locations.go
package domain

type Location struct {
	Name  string `json:"name"`
	IsCBD bool   `json:"is_cbd"`
}

// Locations is the fixed set of delivery addresses a customer can pick from.
var Locations = []Location{
	{Name: "Eldoret CBD", IsCBD: true},
	{Name: "Kapsoya"},
	{Name: "Langas"},
	{Name: "Pioneer"},
	{Name: "Elgon View"},
	{Name: "Kimumu"},
	{Name: "Huruma"},
	{Name: "West Indies"},
	{Name: "Annex"},
	{Name: "Maili Nne"},
	{Name: "Kipkaren"},
	{Name: "Moi University"},
}

func FindLocation(name string) (Location, bool) {
	for _, l := range Locations {
		if l.Name == name {
			return l, true
		}
	}
	return Location{}, false
}
