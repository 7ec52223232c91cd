package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/insura-microsite/internal/infra/http/middleware"
	"github.com/xavierca1/insura-microsite/internal/usecase"
)

type AddressHandler struct {
	Lookup usecase.AddressLookup
}

func NewAddressHandler(lookup usecase.AddressLookup) *AddressHandler {
	return &AddressHandler{Lookup: lookup}
}

func (h *AddressHandler) HandleProvinces(w http.ResponseWriter, r *http.Request) {
	options, err := h.Lookup.Provinces(r.Context())
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *AddressHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	province := chi.URLParam(r, "province")
	options, err := h.Lookup.Cities(r.Context(), province)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *AddressHandler) HandleDistricts(w http.ResponseWriter, r *http.Request) {
	province := chi.URLParam(r, "province")
	city := chi.URLParam(r, "city")
	options, err := h.Lookup.Districts(r.Context(), province, city)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *AddressHandler) HandleSubdistricts(w http.ResponseWriter, r *http.Request) {
	province := chi.URLParam(r, "province")
	city := chi.URLParam(r, "city")
	district := chi.URLParam(r, "district")
	options, err := h.Lookup.Subdistricts(r.Context(), province, city, district)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *AddressHandler) HandleZipLookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if len(q) != 5 {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_POSTAL_CODE", "postal code must be 5 characters")
		return
	}
	result, err := h.Lookup.LookupZip(r.Context(), q)
	if err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleResolve replays the form's current values through a fresh cascade
// and returns the reconciled selection plus the option lists the UI should
// render. Values are applied parent-first; the postal code goes last so its
// result can override the manual picks under the membership guards.
func (h *AddressHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input usecase.AddressSelection
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}

	cascade := usecase.NewAddressCascade(h.Lookup)
	ctx := r.Context()

	if err := cascade.Load(ctx); err != nil {
		middleware.RecordIntegrationError("lifecore")
		writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	if input.Province != "" {
		if err := cascade.SetProvince(ctx, input.Province); err != nil {
			middleware.RecordIntegrationError("lifecore")
			writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
			return
		}
	}
	if input.City != "" {
		if err := cascade.SetCity(ctx, input.City); err != nil {
			middleware.RecordIntegrationError("lifecore")
			writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
			return
		}
	}
	if input.District != "" {
		if err := cascade.SetDistrict(ctx, input.District); err != nil {
			middleware.RecordIntegrationError("lifecore")
			writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
			return
		}
	}
	if input.Subdistrict != "" {
		cascade.SetSubdistrict(input.Subdistrict)
	}
	if input.PostalCode != "" {
		if err := cascade.SetPostalCode(ctx, input.PostalCode); err != nil {
			middleware.RecordIntegrationError("lifecore")
			writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, cascade.Snapshot())
}
