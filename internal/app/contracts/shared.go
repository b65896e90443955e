package contracts

import (
	"context"
	"cosmek-web/internal/app/models"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ThemeStore holds the process-wide default theme.
type ThemeStore interface {
	Get() models.Theme
	Set(theme models.Theme)
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, event *models.BookingEvent) error
}
