package entity

import "time"

// CurrentWeather holds the current conditions for a coordinate pair. Numeric fields are nil
// when the provider omitted them.
type CurrentWeather struct {
	City           string    `json:"city" msgpack:"city"`
	Country        string    `json:"country" msgpack:"country"`
	Lat            float64   `json:"lat" msgpack:"lat"`
	Lon            float64   `json:"lon" msgpack:"lon"`
	TimezoneOffset int       `json:"timezoneOffset" msgpack:"timezoneOffset"`
	Description    string    `json:"description" msgpack:"description"`
	Icon           string    `json:"icon" msgpack:"icon"`
	Temp           *float64  `json:"temp" msgpack:"temp"`
	FeelsLike      *float64  `json:"feelsLike" msgpack:"feelsLike"`
	TempMin        *float64  `json:"tempMin" msgpack:"tempMin"`
	TempMax        *float64  `json:"tempMax" msgpack:"tempMax"`
	Humidity       *float64  `json:"humidity" msgpack:"humidity"`
	Pressure       *float64  `json:"pressure" msgpack:"pressure"`
	Visibility     *float64  `json:"visibility" msgpack:"visibility"`
	Clouds         *float64  `json:"clouds" msgpack:"clouds"`
	WindSpeed      *float64  `json:"windSpeed" msgpack:"windSpeed"`
	WindDeg        *float64  `json:"windDeg" msgpack:"windDeg"`
	Rain1h         *float64  `json:"rain1h,omitempty" msgpack:"rain1h,omitempty"`
	Snow1h         *float64  `json:"snow1h,omitempty" msgpack:"snow1h,omitempty"`
	ObservedAt     time.Time `json:"observedAt" msgpack:"observedAt"`
}
