package model

import (
	"go-weather/internal/domain/compass"
	"go-weather/internal/domain/entity"
)

// CurrentReport is what the dashboard and the bot render for the current conditions
type CurrentReport struct {
	Location    entity.Location       `json:"location" msgpack:"location"`
	Current     entity.CurrentWeather `json:"current" msgpack:"current"`
	Emoji       string                `json:"emoji" msgpack:"emoji"`
	Description string                `json:"description" msgpack:"description"`
	IconURL     string                `json:"iconUrl,omitempty" msgpack:"iconUrl,omitempty"`
	Wind        compass.Reading       `json:"wind" msgpack:"wind"`
	CountryName string                `json:"countryName" msgpack:"countryName"`
	Timezone    string                `json:"timezone" msgpack:"timezone"`
	Example     bool                  `json:"example,omitempty" msgpack:"example,omitempty"`
}

// ForecastReport carries the daily summaries for a location
type ForecastReport struct {
	Location       entity.Location       `json:"location" msgpack:"location"`
	TimezoneOffset int                   `json:"timezoneOffset" msgpack:"timezoneOffset"`
	Days           []entity.DailySummary `json:"days" msgpack:"days"`
}
