package weather

import (
	"context"
)

// Provider abstracts a weather data source: the live OpenWeatherMap client
// or the demo generator.
type Provider interface {
	Name() string
	CurrentWeather(ctx context.Context, city string) (WeatherRecord, error)
	Forecast(ctx context.Context, city string) ([]ForecastDay, error)
}

// KeyValidator reports whether an API key is accepted upstream.
type KeyValidator interface {
	ValidateKey(ctx context.Context) error
}
