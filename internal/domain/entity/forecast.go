package entity

import (
	"time"

	"go-weather/internal/domain/compass"
)

// ForecastSample is one 3-hour reading of the forecast feed
type ForecastSample struct {
	Timestamp   int64    `json:"dt" msgpack:"dt"`
	Temp        *float64 `json:"temp" msgpack:"temp"`
	TempMin     *float64 `json:"tempMin" msgpack:"tempMin"`
	TempMax     *float64 `json:"tempMax" msgpack:"tempMax"`
	Pop         *float64 `json:"pop" msgpack:"pop"`
	WindSpeed   *float64 `json:"windSpeed" msgpack:"windSpeed"`
	WindDeg     *float64 `json:"windDeg" msgpack:"windDeg"`
	Description string   `json:"description" msgpack:"description"`
	Icon        string   `json:"icon" msgpack:"icon"`
}

// ForecastFeed is the raw forecast for one location
type ForecastFeed struct {
	City           string           `json:"city" msgpack:"city"`
	Country        string           `json:"country" msgpack:"country"`
	TimezoneOffset int              `json:"timezoneOffset" msgpack:"timezoneOffset"`
	Samples        []ForecastSample `json:"samples" msgpack:"samples"`
}

// DailySummary aggregates the samples of one local calendar day. nil fields are unavailable.
type DailySummary struct {
	Date        time.Time       `json:"date" msgpack:"date"`
	Description string          `json:"description" msgpack:"description"`
	Icon        string          `json:"icon" msgpack:"icon"`
	TempDay     *float64        `json:"tempDay" msgpack:"tempDay"`
	TempMin     *float64        `json:"tempMin" msgpack:"tempMin"`
	TempMax     *float64        `json:"tempMax" msgpack:"tempMax"`
	Pop         float64         `json:"pop" msgpack:"pop"`
	WindSpeed   *float64        `json:"windSpeed" msgpack:"windSpeed"`
	WindDeg     *int            `json:"windDeg" msgpack:"windDeg"`
	Wind        compass.Reading `json:"wind" msgpack:"wind"`
	Samples     int             `json:"samples" msgpack:"samples"`
}
