package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/schedule"
)

type Handler struct {
	service *Service
	clock   utils.Clock
}

func NewHandler(service *Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// GetUpcoming serves the urgency-bucketed uncovered payments. The "soon"
// window defaults to a week and can be overridden with ?soonDays=N.
func (h *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	soonThreshold := schedule.SoonThresholdList
	if raw := r.URL.Query().Get("soonDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "soonDays must be a non-negative integer", http.StatusBadRequest)
			return
		}
		soonThreshold = parsed
	}

	upcoming, err := h.service.Upcoming(r.Context(), soonThreshold)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(upcoming); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCalendar serves one month of calendar events. Defaults to the current
// month; ?year=YYYY&month=M selects another.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	now := h.clock.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "year must be an integer", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
			return
		}
		month = time.Month(parsed)
	}

	calendar, err := h.service.Calendar(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(calendar); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
