package models

// WeatherData est la version aplatie de la réponse OpenWeatherMap
// affichée sur l'écran d'accueil farmer.
type WeatherData struct {
	CityName    string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}
