package external

// GeocodingResponse is one item of the OpenWeatherMap direct geocoding answer
type GeocodingResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}

// WeatherConditionDTO is the weather[0] entry shared by current and forecast answers
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperatures, pressure and humidity
type MainDTO struct {
	Temp      Number `json:"temp"`
	FeelsLike Number `json:"feels_like"`
	TempMin   Number `json:"temp_min"`
	TempMax   Number `json:"temp_max"`
	Pressure  Number `json:"pressure"`
	Humidity  Number `json:"humidity"`
}

// WindDTO holds wind speed (m/s) and bearing (degrees)
type WindDTO struct {
	Speed Number `json:"speed"`
	Deg   Number `json:"deg"`
	Gust  Number `json:"gust"`
}

// CoordDTO holds a coordinate pair
type CoordDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeatherResponse represents the /data/2.5/weather answer
type CurrentWeatherResponse struct {
	Coord      CoordDTO              `json:"coord"`
	Weather    []WeatherConditionDTO `json:"weather"`
	Main       MainDTO               `json:"main"`
	Visibility Number                `json:"visibility"`
	Wind       WindDTO               `json:"wind"`
	Clouds     struct {
		All Number `json:"all"`
	} `json:"clouds"`
	Rain *struct {
		OneHour Number `json:"1h"`
	} `json:"rain"`
	Snow *struct {
		OneHour Number `json:"1h"`
	} `json:"snow"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// ForecastItemDTO is one 3-hour step of the forecast answer
type ForecastItemDTO struct {
	Dt      int64                 `json:"dt"`
	Main    MainDTO               `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Wind    WindDTO               `json:"wind"`
	Pop     Number                `json:"pop"`
}

// ForecastResponse represents the /data/2.5/forecast answer (5 days, 3-hour steps)
type ForecastResponse struct {
	Cnt  int               `json:"cnt"`
	List []ForecastItemDTO `json:"list"`
	City struct {
		Name     string   `json:"name"`
		Country  string   `json:"country"`
		Coord    CoordDTO `json:"coord"`
		Timezone int      `json:"timezone"`
	} `json:"city"`
}

// APIErrorResponse represents error answers. cod is a number on some endpoints and a string on others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
