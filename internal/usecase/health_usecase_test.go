package usecase_test

import (
	"context"
	"errors"
	"testing"

	"resume-builder-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthUsecase_Check(t *testing.T) {
	ok := usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return nil }))
	status, healthy := ok.Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, "up", status["database"])

	down := usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return errors.New("refused") }))
	status, healthy = down.Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", status["status"])
}
