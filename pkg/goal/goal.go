package goal

import (
	"sort"
	"time"

	"github.com/ahorro/ahorro/pkg/schedule"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Palette is the rotating color list for new goals; a goal gets
// Palette[existing count % len(Palette)] at creation. Presentation only.
var Palette = []string{"rose", "sky", "amber", "emerald", "indigo", "purple"}

// Projection is a goal's saved contribution plan: put Amount aside every
// Frequency period to reach the target by TargetDate.
type Projection struct {
	Amount     float64            `json:"amount"`
	Frequency  schedule.Frequency `json:"frequency"`
	TargetDate string             `json:"targetDate,omitempty"`
}

type Goal struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	TargetAmount float64     `json:"targetAmount"`
	SavedAmount  float64     `json:"savedAmount"`
	Category     string      `json:"category"`
	Priority     Priority    `json:"priority"`
	Color        string      `json:"color"`
	Projection   *Projection `json:"projection,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// IsCompleted reports whether the goal has reached its target.
func (g Goal) IsCompleted() bool {
	return g.SavedAmount >= g.TargetAmount
}

// RemainingAmount is what is still missing to reach the target.
func (g Goal) RemainingAmount() float64 {
	return g.TargetAmount - g.SavedAmount
}

// Clone returns a copy that shares no memory with the original. Collections
// are replaced wholesale on every mutation, so entities must never leak a
// shared Projection pointer into a new snapshot.
func (g Goal) Clone() Goal {
	c := g
	if g.Projection != nil {
		p := *g.Projection
		c.Projection = &p
	}
	return c
}

// SortNewestFirst orders goals by creation time, newest first. This is the
// default list order.
func SortNewestFirst(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
}
