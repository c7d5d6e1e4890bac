package providers

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultLang               = "kr"

	// keyCheckCity is the query used to check that an API key is accepted.
	keyCheckCity = "Seoul"

	forecastTimeLayout = "2006-01-02 15:04:05"
)

var validate = validator.New()

// OpenWeatherProvider implements weather.Provider against OpenWeatherMap's
// current weather and 5 day / 3 hour forecast endpoints.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	lang    string
	client  *http.Client
}

var (
	_ weather.Provider     = (*OpenWeatherProvider)(nil)
	_ weather.KeyValidator = (*OpenWeatherProvider)(nil)
)

// Option customizes an OpenWeatherProvider.
type Option func(*OpenWeatherProvider)

// WithBaseURL points the provider at a different API root.
func WithBaseURL(u string) Option {
	return func(p *OpenWeatherProvider) {
		p.baseURL = strings.TrimRight(u, "/")
	}
}

// WithLang sets the response language.
func WithLang(lang string) Option {
	return func(p *OpenWeatherProvider) {
		p.lang = lang
	}
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...Option) *OpenWeatherProvider {
	p := &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: DefaultOpenWeatherBaseURL,
		lang:    DefaultLang,
		client:  client,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) params(city string) url.Values {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	values.Set("lang", p.lang)
	return values
}

// ValidateKey reports an error unless the upstream accepts the key.
func (p *OpenWeatherProvider) ValidateKey(ctx context.Context) error {
	values := url.Values{}
	values.Set("q", keyCheckCity)
	values.Set("appid", p.apiKey)

	return checkStatus(ctx, p.client, p.baseURL+"/weather", values)
}

type owmCondition struct {
	Main        *string `json:"main"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type owmCurrentResponse struct {
	Name *string `json:"name"`
	Sys  struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
	Weather    []owmCondition `json:"weather"`
	Visibility *float64       `json:"visibility"`
	Clouds     struct {
		All *float64 `json:"all"`
	} `json:"clouds"`
}

// CurrentWeather fetches and normalizes the current weather for city.
func (p *OpenWeatherProvider) CurrentWeather(ctx context.Context, city string) (weather.WeatherRecord, error) {
	var payload owmCurrentResponse
	if err := getJSON(ctx, p.client, p.baseURL+"/weather", p.params(city), &payload); err != nil {
		return weather.WeatherRecord{}, err
	}
	return mapCurrent(payload)
}

func mapCurrent(payload owmCurrentResponse) (weather.WeatherRecord, error) {
	var f fields

	cond := f.condition("weather[0]", payload.Weather)
	rec := weather.WeatherRecord{
		City:          f.str("name", payload.Name),
		Country:       f.str("sys.country", payload.Sys.Country),
		Temperature:   common.Round1(f.num("main.temp", payload.Main.Temp)),
		FeelsLike:     common.Round1(f.num("main.feels_like", payload.Main.FeelsLike)),
		Humidity:      toInt(f.num("main.humidity", payload.Main.Humidity)),
		Pressure:      toInt(f.num("main.pressure", payload.Main.Pressure)),
		WindSpeed:     f.num("wind.speed", payload.Wind.Speed),
		WindDirection: normalizeDegrees(toInt(optional(payload.Wind.Deg))),
		Description:   f.str("weather[0].description", cond.Description),
		Category:      weather.Category(f.str("weather[0].main", cond.Main)),
		Icon:          f.str("weather[0].icon", cond.Icon),
		VisibilityKm:  optional(payload.Visibility) / 1000,
		Cloudiness:    toInt(f.num("clouds.all", payload.Clouds.All)),
	}
	if err := f.err(); err != nil {
		return weather.WeatherRecord{}, err
	}
	if err := validate.Struct(rec); err != nil {
		return weather.WeatherRecord{}, weather.MalformedError("%v", err)
	}
	return rec, nil
}

type owmForecastItem struct {
	DtTxt *string `json:"dt_txt"`
	Main  struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []owmCondition `json:"weather"`
}

type owmForecastResponse struct {
	List *[]owmForecastItem `json:"list"`
}

// Forecast fetches the 3-hour forecast for city and reduces it to at most
// weather.MaxForecastDays daily entries.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, city string) ([]weather.ForecastDay, error) {
	var payload owmForecastResponse
	if err := getJSON(ctx, p.client, p.baseURL+"/forecast", p.params(city), &payload); err != nil {
		return nil, err
	}

	samples, err := mapForecastSamples(payload)
	if err != nil {
		return nil, err
	}
	return weather.BucketDaily(samples, weather.MaxForecastDays), nil
}

func mapForecastSamples(payload owmForecastResponse) ([]weather.ForecastSample, error) {
	if payload.List == nil {
		return nil, weather.MalformedError("missing field list")
	}

	samples := make([]weather.ForecastSample, 0, len(*payload.List))
	for i, item := range *payload.List {
		var f fields

		ts := f.str("dt_txt", item.DtTxt)
		cond := f.condition("weather[0]", item.Weather)
		s := weather.ForecastSample{
			Temperature: f.num("main.temp", item.Main.Temp),
			Humidity:    toInt(f.num("main.humidity", item.Main.Humidity)),
			WindSpeed:   f.num("wind.speed", item.Wind.Speed),
			Description: f.str("weather[0].description", cond.Description),
			Category:    weather.Category(f.str("weather[0].main", cond.Main)),
			Icon:        f.str("weather[0].icon", cond.Icon),
		}
		if err := f.err(); err != nil {
			return nil, weather.MalformedError("list[%d]: %v", i, err.Unwrap())
		}

		t, err := time.Parse(forecastTimeLayout, ts)
		if err != nil {
			return nil, weather.MalformedError("list[%d].dt_txt: %v", i, err)
		}
		s.Date = t.Format(time.DateOnly)

		samples = append(samples, s)
	}
	return samples, nil
}

// fields records which required response fields were absent.
type fields struct {
	missing []string
}

func (f *fields) str(name string, v *string) string {
	if v == nil {
		f.missing = append(f.missing, name)
		return ""
	}
	return *v
}

func (f *fields) num(name string, v *float64) float64 {
	if v == nil {
		f.missing = append(f.missing, name)
		return 0
	}
	return *v
}

func (f *fields) condition(name string, items []owmCondition) owmCondition {
	if len(items) == 0 {
		f.missing = append(f.missing, name)
		return owmCondition{}
	}
	return items[0]
}

func (f *fields) err() *weather.Error {
	if len(f.missing) == 0 {
		return nil
	}
	return weather.MalformedError("missing field %s", strings.Join(f.missing, ", "))
}

func optional(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func toInt(v float64) int {
	return int(math.Round(v))
}

// normalizeDegrees folds any compass reading into [0,360).
func normalizeDegrees(d int) int {
	return ((d % 360) + 360) % 360
}
