package counts

import (
	"context"
	"time"
)

// Noop заглушка кеша для конфигурации без Redis: всегда промах
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, year int, month time.Month) (map[string]int, bool) {
	return nil, false
}

func (n *Noop) Set(ctx context.Context, year int, month time.Month, counts map[string]int) error {
	return nil
}

func (n *Noop) Invalidate(ctx context.Context, year int, month time.Month) error {
	return nil
}
