package usecase

import (
	"context"

	"salon-relay-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	notifier domain.Notifier
}

func NewHealthUsecase(notifier domain.Notifier) HealthUsecase {
	return &healthUsecase{notifier: notifier}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	notifier := "configured"
	if !u.notifier.IsConfigured() {
		notifier = "unconfigured"
	}
	return map[string]string{
		"status":   "ok",
		"notifier": notifier,
	}
}
