// Package domain contains application Usecases orchestrating domain logic by
// dashboard statistics.
package domain

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// recentDealLimit caps the dashboard's recent-deals slice.
const recentDealLimit = 5

// Dashboard computes summary statistics over the full deal and contact
// collections. Pure recomputation on every access; nothing is cached.
func (u *Usecase) Dashboard(ctx context.Context) (entities.DashboardStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	deals, err := u.repo.ListDeals(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	contacts, err := u.repo.ListContacts(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	stats := entities.DashboardStats{
		ActiveDeals:   len(deals),
		TotalContacts: len(contacts),
	}

	for _, d := range deals {
		stats.TotalValue += d.Value
		if d.Stage.Name == entities.WonStageName {
			stats.WonDeals++
		}
	}
	if len(deals) > 0 {
		stats.ConversionRate = float64(stats.WonDeals) / float64(len(deals)) * 100
	}

	for _, stage := range entities.Stages() {
		st := entities.StageStat{Stage: stage}
		for _, d := range deals {
			if d.Stage.ID == stage.ID {
				st.DealCount++
				st.Value += d.Value
			}
		}
		stats.ByStage = append(stats.ByStage, st)
	}

	recent := recentDealLimit
	if len(deals) < recent {
		recent = len(deals)
	}
	stats.RecentDeals = deals[:recent]

	for _, c := range contacts {
		if c.Status == entities.StatusHot {
			stats.HotContacts++
		}
	}

	return stats, nil
}
