package application

import (
	"context"

	loadavgdomain "loadprobe/internal/loadavg/domain"
)

// LoadAverageService serves load average queries
type LoadAverageService struct {
	reader loadavgdomain.Reader
}

// NewLoadAverageService creates a new load average service
func NewLoadAverageService(reader loadavgdomain.Reader) *LoadAverageService {
	return &LoadAverageService{
		reader: reader,
	}
}

// Current reads a fresh snapshot from the host
func (s *LoadAverageService) Current(ctx context.Context) (LoadAverageResponse, error) {
	avg, err := s.reader.Read(ctx)
	if err != nil {
		return LoadAverageResponse{}, err
	}
	return ToLoadAverageResponse(avg), nil
}
