package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ahorro/ahorro/internal/config"
	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/schedule"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ProjectionDTO struct {
	Amount     float64 `json:"amount"`
	Frequency  string  `json:"frequency"`
	TargetDate string  `json:"targetDate,omitempty"`
}

type GoalDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	TargetAmount float64        `json:"targetAmount"`
	SavedAmount  float64        `json:"savedAmount"`
	Category     string         `json:"category"`
	Priority     string         `json:"priority"`
	Color        string         `json:"color"`
	Projection   *ProjectionDTO `json:"projection,omitempty"`
	CreatedAt    string         `json:"createdAt"`
}

type Handler struct {
	service  Service
	clock    utils.Clock
	planning config.Planning
}

func NewHandler(service Service, clock utils.Clock, planning config.Planning) *Handler {
	return &Handler{service: service, clock: clock, planning: planning}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	goals, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]GoalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, GoalToDTO(g))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new savings goal")
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Name == "" || dto.TargetAmount <= 0 {
		http.Error(w, "name and a positive targetAmount are required", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), DTOToGoal(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(GoalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	goalID := mux.Vars(r)["goalId"]

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID != "" && dto.ID != goalID {
		http.Error(w, "goal id in body does not match URL", http.StatusBadRequest)
		return
	}
	dto.ID = goalID

	updated, err := h.service.Update(r.Context(), DTOToGoal(dto))
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "Goal not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(GoalToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := mux.Vars(r)["goalId"]

	deleted, err := h.service.Delete(r.Context(), goalID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetProjection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	goalID := mux.Vars(r)["goalId"]

	var dto ProjectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frequency, err := schedule.ParseFrequency(dto.Frequency)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.SetProjection(r.Context(), goalID, frequency, dto.TargetDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrGoalNotFound):
			http.Error(w, "Goal not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidProjection):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(GoalToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	goalID := mux.Vars(r)["goalId"]

	var contribution struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&contribution); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if contribution.Amount <= 0 {
		http.Error(w, "contribution amount must be positive", http.StatusBadRequest)
		return
	}

	goals, err := h.service.Contribute(r.Context(), goalID, contribution.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]GoalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, GoalToDTO(g))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// PlanningDefaults serves the values the planning form is pre-populated
// with: the default contribution frequency and a target date one horizon
// ahead of today. They are suggestions for the UI, nothing applies them.
func (h *Handler) PlanningDefaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	defaults := struct {
		Frequency  string `json:"frequency"`
		TargetDate string `json:"targetDate"`
	}{
		Frequency:  h.planning.DefaultFrequency,
		TargetDate: schedule.FormatDate(utils.Today(h.clock).AddDate(0, h.planning.DefaultHorizonMonths, 0)),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(defaults); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func GoalToDTO(g Goal) GoalDTO {
	dto := GoalDTO{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		SavedAmount:  g.SavedAmount,
		Category:     g.Category,
		Priority:     string(g.Priority),
		Color:        g.Color,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
	}
	if g.Projection != nil {
		dto.Projection = &ProjectionDTO{
			Amount:     g.Projection.Amount,
			Frequency:  string(g.Projection.Frequency),
			TargetDate: g.Projection.TargetDate,
		}
	}
	return dto
}

func DTOToGoal(dto GoalDTO) Goal {
	return Goal{
		ID:           dto.ID,
		Name:         dto.Name,
		TargetAmount: dto.TargetAmount,
		Category:     dto.Category,
		Priority:     Priority(dto.Priority),
	}
}
