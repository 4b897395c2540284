package usecase

import (
	"context"
	"time"

	"resume-builder-backend/pkg/logger"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db Pinger
}

func NewHealthUsecase(db Pinger) HealthUsecase {
	return &healthUsecase{db: db}
}

// Check reports overall status and database reachability. The bool is false when degraded.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := u.db.Ping(ctx); err != nil {
		logger.Log.Warn("health check: database unreachable", "error", err)
		return map[string]string{"status": "degraded", "database": "down"}, false
	}
	return map[string]string{"status": "ok", "database": "up"}, true
}
