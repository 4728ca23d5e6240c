package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tomatino/tomatino-api/internal/service"
)

// FoodHandler handles the food catalog and leaderboard endpoints. None of the
// mutation endpoints carry an ownership check.
type FoodHandler struct {
	catalog     *service.CatalogService
	leaderboard *service.LeaderboardService
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(catalog *service.CatalogService, leaderboard *service.LeaderboardService) *FoodHandler {
	return &FoodHandler{catalog: catalog, leaderboard: leaderboard}
}

// HandleList handles GET /allfoods?search=&email=&page=&size= requests.
// Non-numeric page or size values degrade to zero; a zero size disables
// paging and returns the full result set.
func (h *FoodHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := service.ListParams{
		Search: q.Get("search"),
		Email:  q.Get("email"),
		Page:   atoiOrZero(q.Get("page")),
		Size:   atoiOrZero(q.Get("size")),
	}

	docs, err := h.catalog.List(r.Context(), params)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// HandleCreate handles POST /allfoods requests.
func (h *FoodHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if !decodeBody(w, r, &doc) {
		return
	}

	res, err := h.catalog.Create(r.Context(), doc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleGet handles GET /food/{id} requests. An absent document is a JSON
// null, not a 404.
func (h *FoodHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleReplace handles PUT /food/{id} requests with upsert semantics.
func (h *FoodHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if !decodeBody(w, r, &body) {
		return
	}

	res, err := h.catalog.Replace(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleMerge handles PATCH /allfoods/{id} requests, merging only the
// supplied top-level fields.
func (h *FoodHandler) HandleMerge(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if !decodeBody(w, r, &body) {
		return
	}

	res, err := h.catalog.Merge(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleDelete handles DELETE /food/{id} requests.
func (h *FoodHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalog.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleTopFoods handles GET /topfoods requests.
func (h *FoodHandler) HandleTopFoods(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.leaderboard.TopFoods(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidID) {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid id"))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
