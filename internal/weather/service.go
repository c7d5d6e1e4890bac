package weather

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Service routes calls to the live provider or, in demo mode, to the demo
// generator, and wraps every outcome in a Result.
type Service struct {
	live     Provider
	demo     Provider
	demoMode bool
	log      *zap.SugaredLogger
}

// NewService creates a new Service. A nil live provider forces demo mode;
// calls routed to a nil provider fail with an unknown error.
func NewService(live, demo Provider, demoMode bool, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if live == nil {
		demoMode = true
	}
	return &Service{
		live:     live,
		demo:     demo,
		demoMode: demoMode,
		log:      log,
	}
}

// DemoMode reports whether calls are served by the demo generator.
func (s *Service) DemoMode() bool {
	return s.demoMode
}

func (s *Service) provider() (Provider, error) {
	p := s.live
	if s.demoMode {
		p = s.demo
	}
	if p == nil {
		return nil, errNoProvider
	}
	return p, nil
}

// GetWeatherData returns the current weather for city.
func (s *Service) GetWeatherData(ctx context.Context, city string) Result[WeatherRecord] {
	p, err := s.provider()
	if err != nil {
		return Failure[WeatherRecord](err)
	}
	rec, err := p.CurrentWeather(ctx, city)
	if err != nil {
		s.log.Warnw("current weather failed", "provider", p.Name(), "city", city, "error", err)
		return Failure[WeatherRecord](err)
	}
	return Success(rec)
}

// GetWeeklyForecast returns up to MaxForecastDays daily entries for city.
func (s *Service) GetWeeklyForecast(ctx context.Context, city string) Result[[]ForecastDay] {
	p, err := s.provider()
	if err != nil {
		return Failure[[]ForecastDay](err)
	}
	days, err := p.Forecast(ctx, city)
	if err != nil {
		s.log.Warnw("forecast failed", "provider", p.Name(), "city", city, "error", err)
		return Failure[[]ForecastDay](err)
	}
	if days == nil {
		days = []ForecastDay{}
	}
	return Success(days)
}

// DefaultValidateTimeout bounds the API key check.
const DefaultValidateTimeout = 5 * time.Second

// SelectMode decides whether the service should run in demo mode. Demo is
// used when requested, when the key is the built-in demo key, or when the
// upstream rejects the key within timeout. A nil validator skips the check.
func SelectMode(ctx context.Context, demoRequested bool, apiKey, demoKey string, v KeyValidator, timeout time.Duration, log *zap.SugaredLogger) bool {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	switch {
	case demoRequested:
		log.Infow("demo mode requested")
		return true
	case apiKey == "" || apiKey == demoKey:
		log.Infow("no API key configured; using demo mode")
		return true
	case v == nil:
		return false
	}

	if timeout <= 0 {
		timeout = DefaultValidateTimeout
	}
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := v.ValidateKey(checkCtx); err != nil {
		log.Warnw("API key validation failed; switching to demo mode", "key", maskKey(apiKey), "error", err)
		return true
	}
	return false
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
