package app

import (
	"database/sql"

	"github.com/ahorro/ahorro/internal/auth"
	"github.com/ahorro/ahorro/internal/config"
	"github.com/ahorro/ahorro/internal/event_bus"
	"github.com/ahorro/ahorro/internal/storage"
	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/dashboard"
	"github.com/ahorro/ahorro/pkg/goal"
	"github.com/ahorro/ahorro/pkg/money"
	"github.com/ahorro/ahorro/pkg/payment"
	"github.com/ahorro/ahorro/pkg/wishlist"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	KV  storage.KVStore
	Bus *event_bus.EventBus

	AuthService *auth.Service
	AuthHandler *auth.Handler

	GoalRepo    goal.Repository
	GoalService goal.Service
	GoalHandler *goal.Handler

	PaymentRepo    payment.Repository
	PaymentService payment.Service
	PaymentHandler *payment.Handler

	WishlistRepo    wishlist.Repository
	WishlistService wishlist.Service
	WishlistHandler *wishlist.Handler

	DashboardService *dashboard.Service
	DashboardHandler *dashboard.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.KV = storage.NewSQLiteKV(db)
	deps.Bus = event_bus.NewEventBus()

	deps.AuthService = auth.NewService(deps.KV)
	deps.AuthHandler = auth.NewHandler(deps.AuthService)

	deps.GoalRepo = goal.NewRepository(deps.KV)
	deps.GoalService = goal.NewService(deps.GoalRepo, deps.Clock, deps.Bus)
	deps.GoalHandler = goal.NewHandler(deps.GoalService, deps.Clock, cfg.Planning)

	deps.PaymentRepo = payment.NewRepository(deps.KV)
	deps.PaymentService = payment.NewService(deps.PaymentRepo, deps.Clock, deps.Bus)
	deps.PaymentHandler = payment.NewHandler(deps.PaymentService)

	deps.WishlistRepo = wishlist.NewRepository(deps.KV)
	deps.WishlistService = wishlist.NewService(deps.WishlistRepo, deps.GoalService)
	deps.WishlistHandler = wishlist.NewHandler(deps.WishlistService)

	deps.DashboardService = dashboard.NewService(deps.GoalService, deps.PaymentService, deps.Clock)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService, deps.Clock)

	subscribeNotifications(deps.Bus)

	return deps
}

// subscribeNotifications logs settlement and recurrence events. The bus keeps
// domain services decoupled from whatever reacts to these moments.
func subscribeNotifications(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.GoalCompleted, func(e event_bus.Event) error {
		if data, ok := e.Data.(event_bus.GoalCompletedData); ok {
			log.Infof("goal %q reached its target of %s", data.Name, money.Format(data.TargetAmount))
		}
		return nil
	})
	bus.Subscribe(event_bus.GoalAdvanced, func(e event_bus.Event) error {
		if data, ok := e.Data.(event_bus.GoalAdvancedData); ok {
			log.Infof("goal %q completed its cycle, next target date %s", data.Name, data.NextTargetDate)
		}
		return nil
	})
	bus.Subscribe(event_bus.PaymentCovered, func(e event_bus.Event) error {
		if data, ok := e.Data.(event_bus.PaymentCoveredData); ok {
			log.Infof("payment %q fully covered (%s)", data.Name, money.Format(data.Amount))
		}
		return nil
	})
	bus.Subscribe(event_bus.PaymentAdvanced, func(e event_bus.Event) error {
		if data, ok := e.Data.(event_bus.PaymentAdvancedData); ok {
			log.Infof("payment %q covered, next due %s", data.Name, data.NextDueDate)
		}
		return nil
	})
}
