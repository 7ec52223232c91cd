package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/http/middleware"
	"github.com/xavierca1/insura-microsite/internal/usecase"
)

type PaymentGateway interface {
	PaymentInstructions(ctx context.Context, spajNumber string) (entity.Payment, error)
}

type RegistrationHandler struct {
	SubmitUC *usecase.SubmitRegistrationUseCase
	Repo     entity.RegistrationRepository
	Gateway  PaymentGateway
}

func NewRegistrationHandler(submitUC *usecase.SubmitRegistrationUseCase, repo entity.RegistrationRepository, gateway PaymentGateway) *RegistrationHandler {
	return &RegistrationHandler{SubmitUC: submitUC, Repo: repo, Gateway: gateway}
}

func (h *RegistrationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitRegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordRegistrationSubmission("error")
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusUnprocessableEntity
			if domainErr.Code == "VALIDATION_ERROR" {
				status = http.StatusBadRequest
			}
			writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	middleware.RecordRegistrationSubmission("accepted")
	writeJSON(w, http.StatusCreated, output)
}

func (h *RegistrationHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reg, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrRegistrationNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "registration not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           reg.ID,
		"spaj_number":  reg.SPAJNumber,
		"status":       reg.Status,
		"product_code": reg.ProductCode,
		"document_url": reg.DocumentURL,
		"updated_at":   reg.UpdatedAt,
	})
}

func (h *RegistrationHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reg, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrRegistrationNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "registration not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	payment, err := h.Gateway.PaymentInstructions(r.Context(), reg.SPAJNumber)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
