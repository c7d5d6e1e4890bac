package weather

import (
	"github.com/i474232898/weather-dashboard/internal/common"
)

// MaxForecastDays caps the number of days a forecast returns.
const MaxForecastDays = 5

// BucketDaily groups 3-hour samples into per-day entries in a single pass.
// Samples are consumed in the order given; a change of date closes the open
// bucket. Only min/max temperature are aggregated, every other field comes
// from the first sample of the day. The result holds at most maxDays entries.
func BucketDaily(samples []ForecastSample, maxDays int) []ForecastDay {
	days := make([]ForecastDay, 0, MaxForecastDays)

	var (
		current ForecastDay
		open    bool
		lo, hi  float64
	)

	closeBucket := func() {
		current.MinTemp = common.Round1(lo)
		current.MaxTemp = common.Round1(hi)
		days = append(days, current)
	}

	for _, s := range samples {
		if !open || s.Date != current.Date {
			if open {
				closeBucket()
			}
			current = ForecastDay{
				Date:        s.Date,
				Temperature: common.Round1(s.Temperature),
				Description: s.Description,
				Category:    s.Category,
				Icon:        s.Icon,
				Humidity:    s.Humidity,
				WindSpeed:   s.WindSpeed,
			}
			lo, hi = s.Temperature, s.Temperature
			open = true
			continue
		}

		if s.Temperature < lo {
			lo = s.Temperature
		}
		if s.Temperature > hi {
			hi = s.Temperature
		}
	}
	if open {
		closeBucket()
	}

	if maxDays >= 0 && len(days) > maxDays {
		days = days[:maxDays]
	}
	return days
}
