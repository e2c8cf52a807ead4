package services

import (
	"context"
	"time"

	"flightops/frms/internal/common"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/models/dtos"
	"flightops/frms/internal/models/entities"
)

const flightCacheTTL = 60 * time.Second

// FlightService serves flight lookups and the search form, with a short
// in-process cache on single-flight reads.
type FlightService struct {
	repo  *repositories.FlightRepository
	cache *common.CacheService
}

func NewFlightService(repo *repositories.FlightRepository, cache *common.CacheService) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (svc *FlightService) Get(ctx context.Context, flightNo string) (*entities.Flight, error) {
	if svc.cache == nil {
		return svc.repo.FindByFlightNo(ctx, flightNo)
	}

	val, err := svc.cache.GetOrSet("flight:"+flightNo, flightCacheTTL, func() (any, error) {
		return svc.repo.FindByFlightNo(ctx, flightNo)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Flight), nil
}

func (svc *FlightService) List(ctx context.Context, limit int) ([]entities.Flight, error) {
	return svc.repo.List(ctx, limit)
}

func (svc *FlightService) Search(ctx context.Context, req dtos.FlightSearchRequest) ([]entities.Flight, error) {
	return svc.repo.Search(ctx, req.FlightNo, req.Date, req.Source, req.Destination)
}
