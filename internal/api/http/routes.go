package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"demoMode": service.DemoMode(),
		})
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities": providers.PopularCities(),
		})
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := service.GetWeatherData(c.UserContext(), q.City)
		return c.Status(statusOf(res.Err())).JSON(res)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := service.GetWeeklyForecast(c.UserContext(), q.City)
		return c.Status(statusOf(res.Err())).JSON(res)
	})

	v1.Get("/weather/icon", func(c *fiber.Ctx) error {
		q := iconQuery{Code: c.Query("code")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"code": q.Code,
			"url":  weather.IconURL(q.Code),
		})
	})
}

func statusOf(err *weather.Error) int {
	if err == nil {
		return fiber.StatusOK
	}
	return err.HTTPStatus()
}

// cityQuery holds the city a dashboard asks about.
type cityQuery struct {
	City string `validate:"required,max=100"`
}

func parseCityQuery(c *fiber.Ctx) (cityQuery, error) {
	q := cityQuery{City: c.Query("city")}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// iconQuery holds an upstream icon code such as "01d".
type iconQuery struct {
	Code string `validate:"required,alphanum,len=3"`
}
