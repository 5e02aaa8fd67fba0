package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UticaHairSalon/salon-booking/internal/cache"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/httpresp"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db      *gorm.DB
	gallery *cache.GalleryCache
}

func NewPublicHandler(db *gorm.DB, gallery *cache.GalleryCache) *PublicHandler {
	return &PublicHandler{
		db:      db,
		gallery: gallery,
	}
}

////////////////////////////////////////////////////////
// GALLERY
////////////////////////////////////////////////////////

// Gallery serves the public hairstyle listing, preferring the Redis copy
// when one exists.
func (h *PublicHandler) Gallery(c *gin.Context) {
	ctx := c.Request.Context()

	if styles, ok := h.gallery.Get(ctx); ok {
		httpresp.List(c, styles)
		return
	}

	var styles []models.Hairstyle
	if err := h.db.Order("id ASC").Find(&styles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_hairstyles", "Failed to fetch hairstyles.")
		return
	}

	h.gallery.Set(ctx, styles)
	httpresp.List(c, styles)
}
