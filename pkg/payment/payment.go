package payment

import (
	"sort"

	"github.com/ahorro/ahorro/pkg/schedule"
)

// Palette is the rotating color list for new payments; a payment gets
// Palette[existing count % len(Palette)] at creation. Presentation only.
var Palette = []string{"teal", "cyan", "blue", "lime", "fuchsia", "pink"}

type Payment struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Amount     float64            `json:"amount"`
	PaidAmount float64            `json:"paidAmount"`
	DueDate    string             `json:"dueDate"`
	Category   string             `json:"category"`
	Frequency  schedule.Frequency `json:"frequency"`
	Color      string             `json:"color"`
}

// IsCovered reports whether the payment is fully paid.
func (p Payment) IsCovered() bool {
	return p.PaidAmount >= p.Amount
}

// RemainingAmount is what is still owed.
func (p Payment) RemainingAmount() float64 {
	return p.Amount - p.PaidAmount
}

func (p Payment) Clone() Payment {
	return p
}

// SortByUrgency orders payments with covered ones last, the rest by due
// date ascending. Due dates are YYYY-MM-DD, so lexicographic order is
// chronological. This is the default list order.
func SortByUrgency(payments []Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		if payments[i].IsCovered() != payments[j].IsCovered() {
			return !payments[i].IsCovered()
		}
		return payments[i].DueDate < payments[j].DueDate
	})
}
