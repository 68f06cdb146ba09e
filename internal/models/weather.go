package models

import "fmt"

// WeatherCondition is the coarse sky state reported by a forecast
type WeatherCondition string

// Weather condition values
const (
	ConditionClear  WeatherCondition = "clear"
	ConditionCloudy WeatherCondition = "cloudy"
	ConditionRain   WeatherCondition = "rain"
	ConditionSnow   WeatherCondition = "snow"
	ConditionFog    WeatherCondition = "fog"
)

// WeatherConditionValues lists every weather condition
var WeatherConditionValues = []WeatherCondition{ConditionClear, ConditionCloudy, ConditionRain, ConditionSnow, ConditionFog}

// ParseWeatherCondition parses a weather condition label
func ParseWeatherCondition(s string) (WeatherCondition, error) {
	for _, c := range WeatherConditionValues {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown weather condition %q", s)
}

// WeatherConditions represents the forecast at the venue around kickoff
type WeatherConditions struct {
	Temperature   float64          `json:"temperature"`    // Celsius
	Humidity      float64          `json:"humidity"`       // Percentage
	WindSpeed     float64          `json:"wind_speed"`     // km/h
	Precipitation float64          `json:"precipitation"`  // mm
	Visibility    float64          `json:"visibility"`     // km
	Condition     WeatherCondition `json:"condition"`
}

// MildWeather returns conditions that trigger none of the weather rules
func MildWeather() WeatherConditions {
	return WeatherConditions{
		Temperature: 15,
		Humidity:    60,
		WindSpeed:   10,
		Visibility:  10,
		Condition:   ConditionClear,
	}
}
