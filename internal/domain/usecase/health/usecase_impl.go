package health

import (
	"context"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	weatherGateway api.WeatherGateway
}

func NewHealthUseCase(weatherGateway api.WeatherGateway) UseCase {
	return &healthUseCase{
		weatherGateway: weatherGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	weatherHealth := useCase.weatherGateway.Health(ctx)

	overallStatus := model.StatusUp
	if weatherHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:     overallStatus,
		WeatherAPI: weatherHealth,
	}
}
