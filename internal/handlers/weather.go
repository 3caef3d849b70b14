package handlers

import (
	"net/http"

	"farmlink_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	Weather *services.WeatherService
}

func NewWeatherHandler(weather *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{Weather: weather}
}

//
// 🌦️ GET /api/weather?city=
//
// L'écran d'accueil farmer affiche la météo de sa ville.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'city' manquant"})
		return
	}

	data, err := h.Weather.GetWeather(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Météo indisponible: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}
