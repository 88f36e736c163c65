package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/metrics"
	"github.com/coursespeak/coursespeak/internal/model"
	"github.com/coursespeak/coursespeak/internal/query"
	"github.com/coursespeak/coursespeak/internal/store"
)

// AdminHandler serves the gated CRUD console API. The listing endpoint runs
// the exact same query pipeline as the public API so the admin console sees
// what the live site shows.
type AdminHandler struct {
	log   *logger.Logger
	store store.Store
}

// NewAdminHandler creates the admin deals handler.
func NewAdminHandler(log *logger.Logger, st store.Store) *AdminHandler {
	return &AdminHandler{log: log.With("handler", "admin"), store: st}
}

const adminDefaultPageSize = 20

// List handles GET /api/admin/deals.
func (h *AdminHandler) List(c *gin.Context) {
	params := listParams(c, adminDefaultPageSize)
	params.Sort = query.SortNewest

	all, err := h.store.ReadAll(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load deals", "error", err)
		// Degraded-but-valid shape: the admin table renders empty with an
		// inline error instead of breaking.
		c.JSON(http.StatusInternalServerError, gin.H{
			"items":      []model.Deal{},
			"total":      0,
			"page":       1,
			"pageSize":   adminDefaultPageSize,
			"totalPages": 0,
			"error":      "Failed to load deals. Please try again later.",
		})
		return
	}
	c.JSON(http.StatusOK, query.Apply(all, params))
}

// Create handles POST /api/admin/deals.
func (h *AdminHandler) Create(c *gin.Context) {
	var body model.Deal
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON"})
		return
	}

	created, err := h.store.Create(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, store.ErrExists) {
			metrics.RecordMutation("create", "failure")
			respondAdminError(c, http.StatusConflict, "A deal with this id already exists")
			return
		}
		h.log.Error("failed to create deal", "error", err)
		metrics.RecordMutation("create", "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create deal"})
		return
	}
	metrics.RecordMutation("create", "success")
	respondAdminData(c, http.StatusOK, created)
}

// Get handles GET /api/admin/deals/:id.
func (h *AdminHandler) Get(c *gin.Context) {
	deal, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondAdminError(c, http.StatusNotFound, "Deal not found")
			return
		}
		h.log.Error("failed to get deal", "id", c.Param("id"), "error", err)
		respondAdminError(c, http.StatusInternalServerError, "Operation failed")
		return
	}
	respondAdminData(c, http.StatusOK, deal)
}

// Patch handles PATCH /api/admin/deals/:id.
func (h *AdminHandler) Patch(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondAdminError(c, http.StatusBadRequest, "Invalid or empty request body")
		return
	}

	// Reject an empty object explicitly; a PATCH that changes nothing is
	// almost always a client bug.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		respondAdminError(c, http.StatusBadRequest, "Invalid or empty request body")
		return
	}
	var patch model.DealPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		respondAdminError(c, http.StatusBadRequest, "Invalid or empty request body")
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RecordMutation("update", "failure")
			respondAdminError(c, http.StatusNotFound, "Deal not found")
			return
		}
		h.log.Error("failed to update deal", "id", c.Param("id"), "error", err)
		metrics.RecordMutation("update", "failure")
		respondAdminError(c, http.StatusInternalServerError, "Operation failed")
		return
	}
	metrics.RecordMutation("update", "success")
	respondAdminData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/deals/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondAdminError(c, http.StatusNotFound, "Deal not found")
			return
		}
		h.log.Error("failed to delete deal", "id", c.Param("id"), "error", err)
		metrics.RecordMutation("delete", "failure")
		respondAdminError(c, http.StatusInternalServerError, "Operation failed")
		return
	}
	metrics.RecordMutation("delete", "success")
	c.Status(http.StatusNoContent)
}
