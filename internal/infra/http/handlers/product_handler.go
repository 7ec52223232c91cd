package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/http/middleware"
	"github.com/xavierca1/insura-microsite/internal/infra/integration/lifecore"
)

// CatalogGateway is the catalog-facing slice of the lifecore client.
type CatalogGateway interface {
	Products(ctx context.Context, slug, search string) ([]entity.ProductListItem, error)
	ProductDetail(ctx context.Context, slug, code string) (*entity.ProductDetail, error)
	ComputePremium(ctx context.Context, slug string, input lifecore.ComputePremiumInput) (entity.Premium, error)
	BankBranches(ctx context.Context, slug string) ([]entity.Option, error)
	Questions(ctx context.Context, slug, code, questionType string) ([]entity.QuestionGroup, error)
	GenerateRiplay(ctx context.Context, slug, code string, input lifecore.GenerateRiplayInput) (entity.Document, error)
}

type ProductHandler struct {
	Gateway CatalogGateway
}

func NewProductHandler(gateway CatalogGateway) *ProductHandler {
	return &ProductHandler{Gateway: gateway}
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	search := r.URL.Query().Get("search")

	products, err := h.Gateway.Products(r.Context(), slug, search)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	code := chi.URLParam(r, "code")

	detail, err := h.Gateway.ProductDetail(r.Context(), slug, code)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	if detail == nil {
		writeErrorResponse(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "no product detail for "+code)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *ProductHandler) HandleComputePremium(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var input lifecore.ComputePremiumInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}

	premium, err := h.Gateway.ComputePremium(r.Context(), slug, input)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	middleware.RecordPremiumComputation()
	writeJSON(w, http.StatusOK, premium)
}

func (h *ProductHandler) HandleBranches(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	branches, err := h.Gateway.BankBranches(r.Context(), slug)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

func (h *ProductHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	code := chi.URLParam(r, "code")
	questionType := r.URL.Query().Get("type")

	groups, err := h.Gateway.Questions(r.Context(), slug, code, questionType)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *ProductHandler) HandleGenerateRiplay(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	code := chi.URLParam(r, "code")

	var input lifecore.GenerateRiplayInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}

	doc, err := h.Gateway.GenerateRiplay(r.Context(), slug, code, input)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
