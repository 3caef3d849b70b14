package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"farmlink_back_end/internal/models"
)

// WeatherService interroge OpenWeatherMap pour l'écran d'accueil farmer.
type WeatherService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewWeatherService(baseURL, apiKey string) *WeatherService {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	return &WeatherService{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// weatherResponse est le format brut de l'API (unités métriques)
type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure int     `json:"pressure"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// GetWeather récupère la météo d'une ville et l'aplatit pour le client
func (s *WeatherService) GetWeather(ctx context.Context, city string) (*models.WeatherData, error) {
	if city == "" {
		return nil, fmt.Errorf("ville manquante")
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erreur requête météo: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API météo a renvoyé %d", res.StatusCode)
	}

	var raw weatherResponse
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("erreur décodage météo: %v", err)
	}

	data := &models.WeatherData{
		CityName:    raw.Name,
		Temperature: raw.Main.Temp,
		Humidity:    raw.Main.Humidity,
		Pressure:    raw.Main.Pressure,
		Description: "Unknown",
	}
	if len(raw.Weather) > 0 {
		data.Description = raw.Weather[0].Description
		data.Icon = raw.Weather[0].Icon
	}

	return data, nil
}
