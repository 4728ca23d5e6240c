package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tomatino/tomatino-api/internal/middleware"
	"github.com/tomatino/tomatino-api/internal/service"
	"github.com/tomatino/tomatino-api/internal/token"
)

// PurchaseHandler handles the purchase ledger endpoints. Only the listing is
// guarded; insert and delete are open, matching the catalog's trust model.
type PurchaseHandler struct {
	purchases *service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchases *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// HandleList handles GET /purchasedFood?email= requests. It runs behind the
// session guard and additionally enforces the one authorization rule in the
// system: the authenticated identity must equal the email being queried.
func (h *PurchaseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized access"})
		return
	}

	email := r.URL.Query().Get("email")
	if token.Email(claims) != email {
		middleware.Forbidden(w)
		return
	}

	records, err := h.purchases.ListByPurchaser(r.Context(), email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleCreate handles POST /purchasedFood requests. The record is appended
// verbatim; no check is made that the referenced food exists, and the food's
// purchaseCount is not touched.
func (h *PurchaseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var record map[string]any
	if !decodeBody(w, r, &record) {
		return
	}

	res, err := h.purchases.Create(r.Context(), record)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleDelete handles DELETE /purchasedFood/{id} requests.
func (h *PurchaseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	res, err := h.purchases.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
