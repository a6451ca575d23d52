package usecase

import (
	"context"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/repository"
	"github.com/abdsramirez-cloud/crmpro1/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ContactUsecaseInterface
	DealUsecaseInterface
	PipelineUsecaseInterface
	DashboardUsecaseInterface
	TaskUsecaseInterface
	UserUsecaseInterface
	SettingsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	prefs domain.PreferencesStore,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, prefs, timeout)
}
