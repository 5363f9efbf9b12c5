package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/catalog"
)

// AssetHandler handles fixed asset endpoints
type AssetHandler struct {
	BaseHandler
	assets *catalog.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assets *catalog.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// Create creates a new asset
// POST /api/v1/assets
func (h *AssetHandler) Create(c *gin.Context) {
	var req catalog.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.assets.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single asset
// GET /api/v1/assets/:id
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.assets.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns all assets
// GET /api/v1/assets
func (h *AssetHandler) List(c *gin.Context) {
	resp, err := h.assets.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to an asset
// PUT /api/v1/assets/:id
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req catalog.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.assets.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an asset
// DELETE /api/v1/assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.assets.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
