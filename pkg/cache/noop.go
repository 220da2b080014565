package cache

import (
	"context"
	"heritage/pkg/domain"
)

// Noop never caches anything. It is used when no Redis URL is configured.
type Noop struct{}

func (Noop) Choices(context.Context) (*domain.FilterChoices, error) {
	return nil, nil
}

func (Noop) StoreChoices(context.Context, domain.FilterChoices) error {
	return nil
}

func (Noop) Invalidate(context.Context) error {
	return nil
}
