package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/insura-microsite/internal/usecase"
)

type WebhookHandler struct {
	ConfirmUC *usecase.ConfirmPaymentUseCase
}

func NewWebhookHandler(confirmUC *usecase.ConfirmPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{ConfirmUC: confirmUC}
}

// Handle receives payment notifications from the payment provider. Unknown
// events and unknown SPAJ numbers are acknowledged with 200 so the provider
// stops retrying them.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event struct {
		Event      string `json:"event"`
		SPAJNumber string `json:"spaj_number"`
	}

	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	if event.Event != "PAYMENT_RECEIVED" && event.Event != "PAYMENT_CONFIRMED" {
		w.WriteHeader(http.StatusOK)
		return
	}

	err := h.ConfirmUC.Execute(r.Context(), usecase.ConfirmPaymentInput{
		SPAJNumber: event.SPAJNumber,
		Event:      event.Event,
	})
	if err != nil {
		log.Error().Err(err).Str("spaj", event.SPAJNumber).Msg("payment confirmation failed")
		w.WriteHeader(http.StatusOK)
		return
	}

	w.WriteHeader(http.StatusOK)
}
