package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/model"
	"github.com/coursespeak/coursespeak/internal/query"
	"github.com/coursespeak/coursespeak/internal/store"
)

// DealsHandler serves the public read API.
type DealsHandler struct {
	log   *logger.Logger
	store store.Store
}

// NewDealsHandler creates the public deals handler.
func NewDealsHandler(log *logger.Logger, st store.Store) *DealsHandler {
	return &DealsHandler{log: log.With("handler", "deals"), store: st}
}

const publicDefaultPageSize = 12

// List handles GET /api/deals.
func (h *DealsHandler) List(c *gin.Context) {
	params := listParams(c, publicDefaultPageSize)
	params.Category = c.Query("category")
	params.Provider = c.Query("provider")
	params.Sort = c.DefaultQuery("sort", query.SortNewest)
	free := c.Query("freeOnly")
	params.FreeOnly = free == "1" || free == "true"

	all, err := h.store.ReadAll(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load deals", "error", err)
		respondPublicError(c, http.StatusInternalServerError, "Failed to load deals")
		return
	}
	c.JSON(http.StatusOK, query.Apply(all, params))
}

// Get handles GET /api/deals/:id. The key may be a deal id or a slug; derived
// rating/students are filled into the response when the record has none.
func (h *DealsHandler) Get(c *gin.Context) {
	key := c.Param("id")
	deal, err := store.FindByIDOrSlug(c.Request.Context(), h.store, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondPublicError(c, http.StatusNotFound, "Deal not found")
			return
		}
		h.log.Error("failed to load deal", "key", key, "error", err)
		respondPublicError(c, http.StatusInternalServerError, "Failed to load deal")
		return
	}

	out := *deal
	if out.Rating == nil {
		r := model.DerivedRating(out.DisplaySeed())
		out.Rating = &r
	}
	if out.Students == nil {
		s := model.DerivedStudents(out.DisplaySeed())
		out.Students = &s
	}
	c.JSON(http.StatusOK, out)
}

// listParams parses the shared q/page/pageSize parameters.
func listParams(c *gin.Context, defaultPageSize int) query.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil || pageSize == 0 {
		pageSize = defaultPageSize
	}
	return query.Params{
		Q:        c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	}
}
