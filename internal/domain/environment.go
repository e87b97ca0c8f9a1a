package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a coordinate holds NaN or infinite values.
var ErrInvalidInput = errors.New("invalid input")

// Coordinate is a WGS-84 latitude/longitude pair in degrees. Range is not
// validated; only non-finite values are rejected.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AQICategory is the severity band of an air quality index value.
type AQICategory string

const (
	AQIGood         AQICategory = "Good"
	AQISatisfactory AQICategory = "Satisfactory"
	AQIModerate     AQICategory = "Moderate"
	AQIPoor         AQICategory = "Poor"
	AQIVeryPoor     AQICategory = "Very Poor"
	AQISevere       AQICategory = "Severe"
)

// EnvironmentalSnapshot is the bundle of pseudo-environmental metrics derived
// for one coordinate. It is a plain value; copies never share state.
type EnvironmentalSnapshot struct {
	AQI              int         `json:"aqi"`
	AQICategory      AQICategory `json:"aqiCategory"`
	PM25             float64     `json:"pm25"`     // µg/m³
	PM10             float64     `json:"pm10"`     // µg/m³
	CO2              float64     `json:"co2"`      // ppm
	NO2              float64     `json:"no2"`      // ppb
	TemperatureC     float64     `json:"temperature"`
	FeelsLikeC       float64     `json:"feelsLike"`
	HumidityPct      float64     `json:"humidity"`
	WindSpeedKmh     float64     `json:"windSpeed"`
	HeatIslandDeltaC float64     `json:"heatIslandEffect"`
	UrbanHeatIndex   float64     `json:"urbanHeatIndex"`
	GreenCoverPct    float64     `json:"greenCoverEstimate"`
}

// GenerateEnvironmentalSnapshot derives a deterministic snapshot from c.
// Identical coordinates always yield identical snapshots. The only failure is
// a non-finite latitude or longitude, reported as ErrInvalidInput.
func GenerateEnvironmentalSnapshot(c Coordinate) (EnvironmentalSnapshot, error) {
	if err := validateCoordinate(c); err != nil {
		return EnvironmentalSnapshot{}, err
	}

	seed := coordinateSeed(c.Lat, c.Lng)
	tropical := isTropical(c.Lat)
	urban := isUrbanHighDensity(c.Lat, c.Lng)

	var temperature, aqi, humidity float64
	if tropical {
		temperature = 30 + jsRound(seed*8)
		humidity = 60 + jsRound(seed*30)
	} else {
		temperature = 15 + jsRound(seed*15)
		humidity = 30 + jsRound(seed*40)
	}
	if urban {
		aqi = 120 + jsRound(seed*180)
	} else {
		aqi = 30 + jsRound(seed*120)
	}

	feelsLike := temperature + jsRound((humidity/100)*6)

	heatIsland := 1 + jsRound(seed*3)
	greenCover := math.Max(10, 40-jsRound(seed*25))
	if urban {
		heatIsland = 2 + jsRound(seed*5)
		greenCover = math.Max(3, 25-jsRound(seed*20))
	}

	return EnvironmentalSnapshot{
		AQI:              int(aqi),
		AQICategory:      ClassifyAQI(int(aqi)),
		PM25:             jsRound(aqi * (0.3 + seed*0.3)),
		PM10:             jsRound(aqi * (0.5 + seed*0.4)),
		CO2:              410 + jsRound(seed*190),
		NO2:              10 + jsRound(aqi*0.15*seed),
		TemperatureC:     temperature,
		FeelsLikeC:       feelsLike,
		HumidityPct:      humidity,
		WindSpeedKmh:     3 + jsRound(seed*22),
		HeatIslandDeltaC: heatIsland,
		UrbanHeatIndex:   feelsLike + jsRound(seed*4),
		GreenCoverPct:    greenCover,
	}, nil
}

// ClassifyAQI maps an AQI value to its category. Each threshold is inclusive
// on its upper bound.
func ClassifyAQI(aqi int) AQICategory {
	switch {
	case aqi <= 50:
		return AQIGood
	case aqi <= 100:
		return AQISatisfactory
	case aqi <= 200:
		return AQIModerate
	case aqi <= 300:
		return AQIPoor
	case aqi <= 400:
		return AQIVeryPoor
	default:
		return AQISevere
	}
}

func validateCoordinate(c Coordinate) error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return fmt.Errorf("%w: latitude %v is not finite", ErrInvalidInput, c.Lat)
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return fmt.Errorf("%w: longitude %v is not finite", ErrInvalidInput, c.Lng)
	}
	return nil
}

// coordinateSeed scrambles a coordinate into [0, 1). The explicit float64
// conversions stop the compiler from fusing the multiply-adds, which would
// change the low bits on some architectures.
func coordinateSeed(lat, lng float64) float64 {
	x := float64(lat*12.9898) + float64(lng*78.233)
	return math.Mod(math.Abs(float64(math.Sin(x)*43758.5453)), 1)
}

func isTropical(lat float64) bool {
	return math.Abs(lat) < 25
}

// isUrbanHighDensity is a rectangular proxy for densely populated,
// high-pollution regions. All bounds are exclusive.
func isUrbanHighDensity(lat, lng float64) bool {
	return lat > 8 && lat < 35 && lng > 68 && lng < 97
}

// jsRound rounds half toward positive infinity, matching the reference
// client's Math.round for every value this package produces.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
