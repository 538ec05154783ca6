package wishlist

import "github.com/ahorro/ahorro/pkg/goal"

// Item is a wishlist entry: something the user may want to save for later.
// EstimatedAmount is optional; items without one convert into goals with a
// zero target the user fills in afterwards.
type Item struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	Priority        goal.Priority `json:"priority"`
	EstimatedAmount *float64      `json:"estimatedAmount,omitempty"`
	URL             string        `json:"url,omitempty"`
	Distributor     string        `json:"distributor,omitempty"`
}

func (i Item) Clone() Item {
	c := i
	if i.EstimatedAmount != nil {
		amount := *i.EstimatedAmount
		c.EstimatedAmount = &amount
	}
	return c
}
