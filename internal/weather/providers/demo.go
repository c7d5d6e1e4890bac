package providers

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Rand is the random source the demo generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the goroutine-safe top-level math/rand/v2 functions.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

type demoCity struct {
	name        string
	baseTemp    float64
	country     string
	displayName string
}

// popularCities is ordered the way a city picker should list them.
var popularCities = []demoCity{
	{name: "Seoul", baseTemp: 15, country: "KR", displayName: "서울"},
	{name: "Tokyo", baseTemp: 18, country: "JP", displayName: "도쿄"},
	{name: "New York", baseTemp: 12, country: "US", displayName: "뉴욕"},
	{name: "London", baseTemp: 8, country: "GB", displayName: "런던"},
	{name: "Paris", baseTemp: 10, country: "FR", displayName: "파리"},
	{name: "Sydney", baseTemp: 22, country: "AU", displayName: "시드니"},
}

var demoCities = func() map[string]demoCity {
	m := make(map[string]demoCity, len(popularCities))
	for _, c := range popularCities {
		m[c.name] = c
	}
	return m
}()

// City is an entry of the quick-pick list.
type City struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Country     string `json:"country"`
}

// PopularCities returns the cities the demo generator knows, in display order.
func PopularCities() []City {
	out := make([]City, 0, len(popularCities))
	for _, c := range popularCities {
		out = append(out, City{Name: c.name, DisplayName: c.displayName, Country: c.country})
	}
	return out
}

const (
	defaultBaseTemp = 20
	unknownCountry  = "XX"
)

type demoCondition struct {
	category    weather.Category
	description string
	icon        string
}

var demoConditions = []demoCondition{
	{weather.CategoryClear, "맑음", "01d"},
	{weather.CategoryClouds, "구름 많음", "03d"},
	{weather.CategoryRain, "비", "10d"},
	{weather.CategorySnow, "눈", "13d"},
}

// DemoProvider generates plausible weather without touching the network.
// It never fails.
type DemoProvider struct {
	rnd Rand
	now func() time.Time
}

var _ weather.Provider = (*DemoProvider)(nil)

// DemoOption customizes a DemoProvider.
type DemoOption func(*DemoProvider)

// WithRand injects the random source, e.g. a seeded *rand.Rand in tests.
func WithRand(r Rand) DemoOption {
	return func(p *DemoProvider) {
		p.rnd = r
	}
}

// WithClock injects the clock used to date forecast entries.
func WithClock(now func() time.Time) DemoOption {
	return func(p *DemoProvider) {
		p.now = now
	}
}

func NewDemoProvider(opts ...DemoOption) *DemoProvider {
	p := &DemoProvider{
		rnd: globalRand{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *DemoProvider) Name() string {
	return "demo"
}

func lookupDemoCity(name string) demoCity {
	if c, ok := demoCities[name]; ok {
		return c
	}
	return demoCity{name: name, baseTemp: defaultBaseTemp, country: unknownCountry, displayName: name}
}

func (p *DemoProvider) uniform(lo, hi float64) float64 {
	return common.Uniform(p.rnd.Float64(), lo, hi)
}

// intBetween returns an integer in [lo, hi].
func (p *DemoProvider) intBetween(lo, hi int) int {
	return lo + p.rnd.IntN(hi-lo+1)
}

func (p *DemoProvider) condition() demoCondition {
	return demoConditions[p.rnd.IntN(len(demoConditions))]
}

// CurrentWeather returns a synthetic record around the city's base
// temperature.
func (p *DemoProvider) CurrentWeather(_ context.Context, city string) (weather.WeatherRecord, error) {
	info := lookupDemoCity(city)

	temp := common.Round1(info.baseTemp + p.uniform(-5, 5))
	feelsLike := common.Round1(temp + p.uniform(-2, 2))
	cond := p.condition()

	return weather.WeatherRecord{
		City:          info.displayName,
		Country:       info.country,
		Temperature:   temp,
		FeelsLike:     feelsLike,
		Humidity:      p.intBetween(40, 90),
		Pressure:      p.intBetween(1000, 1025),
		WindSpeed:     common.Round1(p.uniform(0, 10)),
		WindDirection: p.rnd.IntN(360),
		Description:   cond.description,
		Category:      cond.category,
		Icon:          cond.icon,
		VisibilityKm:  common.Round1(p.uniform(5, 20)),
		Cloudiness:    p.intBetween(0, 100),
	}, nil
}

// Forecast returns one synthetic entry per day for the next
// weather.MaxForecastDays days, starting today.
func (p *DemoProvider) Forecast(_ context.Context, city string) ([]weather.ForecastDay, error) {
	info := lookupDemoCity(city)
	today := p.now()

	days := make([]weather.ForecastDay, 0, weather.MaxForecastDays)
	for i := 0; i < weather.MaxForecastDays; i++ {
		cond := p.condition()
		dayTemp := info.baseTemp + p.uniform(-5, 5)

		days = append(days, weather.ForecastDay{
			Date:        today.AddDate(0, 0, i).Format(time.DateOnly),
			Temperature: common.Round1(dayTemp),
			MinTemp:     common.Round1(dayTemp - p.uniform(2, 5)),
			MaxTemp:     common.Round1(dayTemp + p.uniform(2, 5)),
			Description: cond.description,
			Category:    cond.category,
			Icon:        cond.icon,
			Humidity:    p.intBetween(40, 90),
			WindSpeed:   common.Round1(p.uniform(0, 10)),
		})
	}
	return days, nil
}
