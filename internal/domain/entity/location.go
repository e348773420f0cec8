package entity

// Location is the geocoding result for a free-text place name
type Location struct {
	Query         string  `json:"query" msgpack:"query"`
	Name          string  `json:"name" msgpack:"name"`
	LocalizedName string  `json:"localizedName" msgpack:"localizedName"`
	Country       string  `json:"country" msgpack:"country"`
	CountryName   string  `json:"countryName" msgpack:"countryName"`
	State         string  `json:"state,omitempty" msgpack:"state,omitempty"`
	Lat           float64 `json:"lat" msgpack:"lat"`
	Lon           float64 `json:"lon" msgpack:"lon"`
}

// DisplayName prefers the localized name, then the provider name, then the query
func (l Location) DisplayName() string {
	switch {
	case l.LocalizedName != "":
		return l.LocalizedName
	case l.Name != "":
		return l.Name
	default:
		return l.Query
	}
}
