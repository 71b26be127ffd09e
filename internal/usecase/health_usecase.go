package usecase

import (
	"context"

	"next-form-backend/internal/domain"
)

const (
	serviceMessage = "Welcome to Next Form App API"
	serviceVersion = "1.0.0"
)

type healthUsecase struct{}

func NewHealthUsecase() domain.HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Info() domain.ServiceInfo {
	return domain.ServiceInfo{
		Message: serviceMessage,
		Version: serviceVersion,
	}
}

// Check reports liveness only; it must not touch the storage backend.
func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{Status: "OK"}
}
