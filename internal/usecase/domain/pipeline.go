// Package domain contains application Usecases orchestrating domain logic by
// pipeline board.
package domain

import (
	"context"
	"fmt"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// Board groups deals by stage in fixed stage order with per-column derived
// aggregates. Column contents follow the store's collection order.
func (u *Usecase) Board(ctx context.Context) ([]entities.BoardColumn, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	deals, err := u.repo.ListDeals(ctx)
	if err != nil {
		return nil, err
	}

	stages := entities.Stages()
	columns := make([]entities.BoardColumn, 0, len(stages))
	for _, stage := range stages {
		col := entities.BoardColumn{Stage: stage, Deals: []entities.Deal{}}
		for _, d := range deals {
			if d.Stage.ID == stage.ID {
				col.Deals = append(col.Deals, d)
				col.Value += d.Value
			}
		}
		col.DealCount = len(col.Deals)
		columns = append(columns, col)
	}
	return columns, nil
}

// MoveDeal applies a drag-end stage transition. A cancelled drag (empty
// destination) or a drop on the same stage at the same position changes
// nothing and reports moved=false. In-column ordering is not persisted.
func (u *Usecase) MoveDeal(ctx context.Context, mv entities.Move) (*entities.Deal, bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if mv.DealID == "" {
		return nil, false, fmt.Errorf("%w: deal id is required", entities.ErrInvalidArgument)
	}

	if mv.DestStage == "" {
		return nil, false, nil
	}
	if mv.DestStage == mv.SourceStage && mv.DestIndex == mv.SourceIndex {
		return nil, false, nil
	}

	if _, ok := entities.StageByID(mv.DestStage); !ok {
		return nil, false, fmt.Errorf("%w: %s", entities.ErrStageNotFound, mv.DestStage)
	}

	deal, err := u.repo.UpdateDeal(ctx, mv.DealID, entities.DealUpdate{StageID: &mv.DestStage})
	if err != nil {
		return nil, false, err
	}
	u.log.Infow("deal moved", "deal_id", mv.DealID, "from", mv.SourceStage, "to", mv.DestStage)
	return deal, true, nil
}
