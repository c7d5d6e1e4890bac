package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(date string, temp float64, desc string) ForecastSample {
	return ForecastSample{
		Date:        date,
		Temperature: temp,
		Description: desc,
		Category:    CategoryClouds,
		Icon:        "03d",
		Humidity:    60,
		WindSpeed:   2.5,
	}
}

func TestBucketDailyTwoDays(t *testing.T) {
	samples := []ForecastSample{
		sample("2026-10-18", 12.34, "흐림"),
		sample("2026-10-18", 15.06, "맑음"),
		sample("2026-10-18", 9.96, "비"),
		sample("2026-10-19", 7.0, "눈"),
		sample("2026-10-19", 11.26, "맑음"),
	}

	days := BucketDaily(samples, MaxForecastDays)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-10-18", days[0].Date)
	assert.Equal(t, 10.0, days[0].MinTemp)
	assert.Equal(t, 15.1, days[0].MaxTemp)
	assert.Equal(t, 12.3, days[0].Temperature)
	assert.Equal(t, "흐림", days[0].Description)

	assert.Equal(t, "2026-10-19", days[1].Date)
	assert.Equal(t, 7.0, days[1].MinTemp)
	assert.Equal(t, 11.3, days[1].MaxTemp)
	assert.Equal(t, "눈", days[1].Description)
}

func TestBucketDailyEmpty(t *testing.T) {
	days := BucketDaily(nil, MaxForecastDays)
	require.NotNil(t, days)
	assert.Empty(t, days)
}

func TestBucketDailySingleSample(t *testing.T) {
	days := BucketDaily([]ForecastSample{sample("2026-10-18", 3.14, "맑음")}, MaxForecastDays)
	require.Len(t, days, 1)
	assert.Equal(t, 3.1, days[0].MinTemp)
	assert.Equal(t, 3.1, days[0].MaxTemp)
}

func TestBucketDailyTruncates(t *testing.T) {
	var samples []ForecastSample
	dates := []string{"2026-10-18", "2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23"}
	for i, d := range dates {
		for h := 0; h < 8; h++ {
			samples = append(samples, sample(d, float64(i*10+h), "맑음"))
		}
	}

	days := BucketDaily(samples, MaxForecastDays)
	require.Len(t, days, MaxForecastDays)
	for i, d := range days {
		assert.Equal(t, dates[i], d.Date)
		assert.LessOrEqual(t, d.MinTemp, d.MaxTemp)
		assert.Equal(t, float64(i*10), d.MinTemp)
		assert.Equal(t, float64(i*10+7), d.MaxTemp)
		if i > 0 {
			assert.Greater(t, d.Date, days[i-1].Date)
		}
	}
}

func TestBucketDailyRepresentativeIsFirstSample(t *testing.T) {
	first := sample("2026-10-18", 5, "맑음")
	first.Humidity = 30
	first.WindSpeed = 1.2
	first.Icon = "01n"
	later := sample("2026-10-18", 20, "비")
	later.Humidity = 95
	later.WindSpeed = 9.9

	days := BucketDaily([]ForecastSample{first, later}, MaxForecastDays)
	require.Len(t, days, 1)
	assert.Equal(t, 30, days[0].Humidity)
	assert.Equal(t, 1.2, days[0].WindSpeed)
	assert.Equal(t, "01n", days[0].Icon)
	assert.Equal(t, "맑음", days[0].Description)
	assert.Equal(t, 5.0, days[0].MinTemp)
	assert.Equal(t, 20.0, days[0].MaxTemp)
}
