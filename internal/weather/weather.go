// Package weather serves the demo forecast data. It holds no state; the
// interesting part of the weather service is the gate in front of it.
package weather

import (
	"math/rand/v2"
	"time"
)

var summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

type Forecast struct {
	Date         string `json:"date"`
	TemperatureC int    `json:"temperatureC"`
	TemperatureF int    `json:"temperatureF"`
	Summary      string `json:"summary"`
}

type Service struct{}

func NewService() *Service { return &Service{} }

// Forecast returns five days of random weather starting tomorrow.
func (s *Service) Forecast() []Forecast {
	out := make([]Forecast, 5)
	for i := range out {
		c := rand.IntN(75) - 20 // -20..54
		out[i] = Forecast{
			Date:         time.Now().AddDate(0, 0, i+1).Format("2006-01-02"),
			TemperatureC: c,
			TemperatureF: 32 + c*9/5,
			Summary:      summaries[rand.IntN(len(summaries))],
		}
	}
	return out
}
