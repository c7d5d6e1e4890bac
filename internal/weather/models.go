package weather

// Category is the coarse upstream weather group (e.g. "Clear", "Rain").
type Category string

const (
	CategoryClear  Category = "Clear"
	CategoryClouds Category = "Clouds"
	CategoryRain   Category = "Rain"
	CategorySnow   Category = "Snow"
)

// WeatherRecord is the normalized current-weather view for one city.
type WeatherRecord struct {
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Temperature   float64  `json:"temperature"`
	FeelsLike     float64  `json:"feelsLike"`
	Humidity      int      `json:"humidity" validate:"min=0,max=100"`
	Pressure      int      `json:"pressure" validate:"min=0"`
	WindSpeed     float64  `json:"windSpeed" validate:"min=0"`
	WindDirection int      `json:"windDirection" validate:"min=0,lt=360"`
	Description   string   `json:"description"`
	Category      Category `json:"mainWeather"`
	Icon          string   `json:"icon"`
	VisibilityKm  float64  `json:"visibility" validate:"min=0"`
	Cloudiness    int      `json:"cloudiness" validate:"min=0,max=100"`
}

// ForecastDay is one calendar day of a forecast. Non-aggregated fields
// come from the first sample seen for the day.
type ForecastDay struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	Temperature float64  `json:"temperature"`
	MinTemp     float64  `json:"minTemp"`
	MaxTemp     float64  `json:"maxTemp"`
	Description string   `json:"description"`
	Category    Category `json:"mainWeather"`
	Icon        string   `json:"icon"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"windSpeed"`
}

// ForecastSample is a single 3-hour upstream forecast point.
type ForecastSample struct {
	Date        string
	Temperature float64
	Description string
	Category    Category
	Icon        string
	Humidity    int
	WindSpeed   float64
}
