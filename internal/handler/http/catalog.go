package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/haneco/timesheet-backend-go/internal/domain/catalog"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/response"
)

type CatalogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Tree(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CatalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &CatalogHandlerImpl{catalogService: catalogService}
}

// Create implements CatalogHandler.
func (h *CatalogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created", created)
}

// List implements CatalogHandler.
func (h *CatalogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.catalogService.List(r.Context(), r.URL.Query().Get("project_type"))
	if err != nil {
		slog.Error("List jobs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// Tree implements CatalogHandler.
func (h *CatalogHandlerImpl) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.catalogService.Tree(r.Context(), r.URL.Query().Get("project_type"))
	if err != nil {
		slog.Error("Job tree service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tree)
}

// GetByID implements CatalogHandler.
func (h *CatalogHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	j, err := h.catalogService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, j)
}

// Update implements CatalogHandler.
func (h *CatalogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.catalogService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements CatalogHandler.
func (h *CatalogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted", nil)
}
