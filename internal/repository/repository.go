// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/abdsramirez-cloud/crmpro1/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	ContactInterface
	DealInterface
	TaskInterface
	UserInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(ctx, log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
