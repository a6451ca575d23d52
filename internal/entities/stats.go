// Package entities contains core business entities.
package entities

// StageStat describes deal count and summed value for one pipeline stage.
type StageStat struct {
	Stage     Stage   `json:"stage"`
	DealCount int     `json:"dealCount"`
	Value     float64 `json:"value"`
}

// DashboardStats aggregates summary metrics over the deal and contact
// collections. Recomputed on every access, never stored.
type DashboardStats struct {
	TotalValue     float64     `json:"totalValue"`
	ActiveDeals    int         `json:"activeDeals"`
	TotalContacts  int         `json:"totalContacts"`
	WonDeals       int         `json:"wonDeals"`
	ConversionRate float64     `json:"conversionRate"`
	ByStage        []StageStat `json:"byStage"`
	RecentDeals    []Deal      `json:"recentDeals"`
	HotContacts    int         `json:"hotContacts"`
}

// BoardColumn is one kanban column: a stage plus the deals currently in it
// and their derived aggregates.
type BoardColumn struct {
	Stage     Stage   `json:"stage"`
	Deals     []Deal  `json:"deals"`
	DealCount int     `json:"dealCount"`
	Value     float64 `json:"value"`
}

// Move carries a drag-initiated stage transition. A cancelled drag has an
// empty destination stage.
type Move struct {
	DealID      string
	SourceStage string
	DestStage   string
	SourceIndex int
	DestIndex   int
}
