package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ahorro/ahorro/pkg/schedule"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PaymentDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	PaidAmount float64 `json:"paidAmount"`
	DueDate    string  `json:"dueDate"`
	Category   string  `json:"category"`
	Frequency  string  `json:"frequency"`
	Color      string  `json:"color"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	payments, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, PaymentToDTO(p))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new scheduled payment")
	w.Header().Set("Content-Type", "application/json")

	var dto PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := h.validate(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), payment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(PaymentToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	paymentID := mux.Vars(r)["paymentId"]

	var dto PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID != "" && dto.ID != paymentID {
		http.Error(w, "payment id in body does not match URL", http.StatusBadRequest)
		return
	}
	dto.ID = paymentID

	payment, err := h.validate(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), payment)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			http.Error(w, "Payment not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PaymentToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	deleted, err := h.service.Delete(r.Context(), paymentID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	paymentID := mux.Vars(r)["paymentId"]

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

	payments, err := h.service.Contribute(r.Context(), paymentID, contribution.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, PaymentToDTO(p))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// validate turns a DTO into a domain payment, rejecting requests the forms
// should never produce.
func (h *Handler) validate(dto PaymentDTO) (Payment, error) {
	if dto.Name == "" || dto.Amount <= 0 {
		return Payment{}, errors.New("name and a positive amount are required")
	}
	if _, err := schedule.ParseDate(dto.DueDate); err != nil {
		return Payment{}, errors.New("dueDate must be a valid YYYY-MM-DD date")
	}
	frequency, err := schedule.ParseFrequency(dto.Frequency)
	if err != nil {
		return Payment{}, err
	}
	return Payment{
		ID:        dto.ID,
		Name:      dto.Name,
		Amount:    dto.Amount,
		DueDate:   dto.DueDate,
		Category:  dto.Category,
		Frequency: frequency,
	}, nil
}

func PaymentToDTO(p Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID,
		Name:       p.Name,
		Amount:     p.Amount,
		PaidAmount: p.PaidAmount,
		DueDate:    p.DueDate,
		Category:   p.Category,
		Frequency:  string(p.Frequency),
		Color:      p.Color,
	}
}
