package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlink_back_end/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherService_GetWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Pune", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Pune",
			"main": {"temp": 27.4, "pressure": 1012, "humidity": 64},
			"weather": [{"description": "scattered clouds", "icon": "03d"}]
		}`))
	}))
	defer srv.Close()

	svc := services.NewWeatherService(srv.URL, "test-key")

	data, err := svc.GetWeather(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, "Pune", data.CityName)
	assert.Equal(t, 27.4, data.Temperature)
	assert.Equal(t, 64, data.Humidity)
	assert.Equal(t, 1012, data.Pressure)
	assert.Equal(t, "scattered clouds", data.Description)
	assert.Equal(t, "03d", data.Icon)
}

func TestWeatherService_GetWeather_NoConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Nashik", "main": {"temp": 31.0}, "weather": []}`))
	}))
	defer srv.Close()

	svc := services.NewWeatherService(srv.URL, "test-key")

	data, err := svc.GetWeather(context.Background(), "Nashik")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", data.Description)
}

func TestWeatherService_GetWeather_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	svc := services.NewWeatherService(srv.URL, "test-key")

	_, err := svc.GetWeather(context.Background(), "Nullepart")
	assert.Error(t, err)
}

func TestWeatherService_GetWeather_EmptyCity(t *testing.T) {
	svc := services.NewWeatherService("http://unused", "test-key")

	_, err := svc.GetWeather(context.Background(), "")
	assert.Error(t, err)
}

func TestNewWeatherService_DefaultBaseURL(t *testing.T) {
	svc := services.NewWeatherService("", "k")
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", svc.BaseURL)
}
