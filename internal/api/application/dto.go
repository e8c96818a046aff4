package application

import (
	loadavgdomain "loadprobe/internal/loadavg/domain"
)

// LoadAverageResponse represents the host load average in API responses
type LoadAverageResponse struct {
	Last   float64 `json:"last" example:"0.5"`
	Last5  float64 `json:"last5" example:"0.75"`
	Last15 float64 `json:"last15" example:"1.2"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToLoadAverageResponse converts a domain snapshot to an API response
func ToLoadAverageResponse(l loadavgdomain.LoadAverage) LoadAverageResponse {
	return LoadAverageResponse{
		Last:   l.Last,
		Last5:  l.Last5,
		Last15: l.Last15,
	}
}
