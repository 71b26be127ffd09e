package domain

import "context"

// ServiceInfo identifies the running API.
type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status string `json:"status"`
}

type HealthUsecase interface {
	Info() ServiceInfo
	Check(ctx context.Context) HealthStatus
}
