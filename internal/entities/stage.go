// Package entities contains core business entities.
package entities

// Stage is one named step of the fixed sales pipeline.
type Stage struct {
	ID    string
	Name  string
	Color string
	Order int
}

// WonStageName is the display name of the terminal "won" stage used by the
// dashboard conversion-rate computation.
const WonStageName = "Closed Won"

// pipelineStages is the fixed, ordered stage set. Not user-editable.
var pipelineStages = []Stage{
	{ID: "lead", Name: "Lead", Color: "#6B7280", Order: 1},
	{ID: "qualified", Name: "Qualified", Color: "#3B82F6", Order: 2},
	{ID: "proposal", Name: "Proposal", Color: "#F59E0B", Order: 3},
	{ID: "negotiation", Name: "Negotiation", Color: "#8B5CF6", Order: 4},
	{ID: "closed-won", Name: "Closed Won", Color: "#10B981", Order: 5},
}

// Stages returns a copy of the pipeline stage set in order.
func Stages() []Stage {
	out := make([]Stage, len(pipelineStages))
	copy(out, pipelineStages)
	return out
}

// StageByID looks up a pipeline stage by id.
func StageByID(id string) (Stage, bool) {
	for _, s := range pipelineStages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}
