package wishlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ahorro/ahorro/pkg/goal"
	"github.com/gorilla/mux"
)

type ItemDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Priority        string   `json:"priority"`
	EstimatedAmount *float64 `json:"estimatedAmount,omitempty"`
	URL             string   `json:"url,omitempty"`
	Distributor     string   `json:"distributor,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		dtos = append(dtos, ItemToDTO(i))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), DTOToItem(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ItemToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	itemID := mux.Vars(r)["itemId"]

	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID != "" && dto.ID != itemID {
		http.Error(w, "item id in body does not match URL", http.StatusBadRequest)
		return
	}
	dto.ID = itemID
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), DTOToItem(dto))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			http.Error(w, "Wishlist item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ItemToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	deleted, err := h.service.Delete(r.Context(), itemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Wishlist item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Convert turns a wishlist item into a savings goal and returns the goal.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	itemID := mux.Vars(r)["itemId"]

	created, err := h.service.ConvertToGoal(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			http.Error(w, "Wishlist item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(goal.GoalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ItemToDTO(i Item) ItemDTO {
	return ItemDTO{
		ID:              i.ID,
		Name:            i.Name,
		Category:        i.Category,
		Priority:        string(i.Priority),
		EstimatedAmount: i.EstimatedAmount,
		URL:             i.URL,
		Distributor:     i.Distributor,
	}
}

func DTOToItem(dto ItemDTO) Item {
	return Item{
		ID:              dto.ID,
		Name:            dto.Name,
		Category:        dto.Category,
		Priority:        goal.Priority(dto.Priority),
		EstimatedAmount: dto.EstimatedAmount,
		URL:             dto.URL,
		Distributor:     dto.Distributor,
	}
}
