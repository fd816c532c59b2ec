package handlers

import (
	"net/http"

	"github.com/gatekit/gatekit/internal/httpx"
	"github.com/gatekit/gatekit/internal/weather"
)

type WeatherHandler struct {
	Service *weather.Service
}

func NewWeatherHandler(svc *weather.Service) *WeatherHandler {
	return &WeatherHandler{Service: svc}
}

func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Service.Forecast())
}
