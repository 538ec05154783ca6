package event_bus

const (
	// GoalCompleted fires when a contribution brings a goal to its target.
	GoalCompleted EventType = "goal.completed"
	// GoalAdvanced fires when a completed recurring goal spawns its next cycle.
	GoalAdvanced EventType = "goal.advanced"
	// PaymentCovered fires when a contribution fully covers a payment.
	PaymentCovered EventType = "payment.covered"
	// PaymentAdvanced fires when a covered recurring payment spawns its next cycle.
	PaymentAdvanced EventType = "payment.advanced"
)

type GoalCompletedData struct {
	GoalID       string
	Name         string
	TargetAmount float64
}

type GoalAdvancedData struct {
	GoalID         string
	SuccessorID    string
	Name           string
	NextTargetDate string
}

type PaymentCoveredData struct {
	PaymentID string
	Name      string
	Amount    float64
}

type PaymentAdvancedData struct {
	PaymentID   string
	SuccessorID string
	Name        string
	NextDueDate string
}
