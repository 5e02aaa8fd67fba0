package handlers

import (
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	"github.com/UticaHairSalon/salon-booking/internal/cache"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/httpresp"
	"github.com/UticaHairSalon/salon-booking/internal/imagestore"
	"github.com/UticaHairSalon/salon-booking/internal/middleware"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

const maxImageBytes = 10 << 20 // 10 MiB upload cap

// ======================================================
// HANDLER
// ======================================================

type HairstyleHandler struct {
	db      *gorm.DB
	images  *imagestore.Store
	gallery *cache.GalleryCache
	audit   *audit.Dispatcher
}

func NewHairstyleHandler(
	db *gorm.DB,
	images *imagestore.Store,
	gallery *cache.GalleryCache,
	audit *audit.Dispatcher,
) *HairstyleHandler {
	return &HairstyleHandler{
		db:      db,
		images:  images,
		gallery: gallery,
		audit:   audit,
	}
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *HairstyleHandler) List(c *gin.Context) {
	var styles []models.Hairstyle
	if err := h.db.Order("id ASC").Find(&styles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_hairstyles", "Failed to fetch hairstyles.")
		return
	}

	httpresp.List(c, styles)
}

// ======================================================
// CREATE (multipart upload)
// ======================================================

func (h *HairstyleHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		httperr.BadRequest(c, "missing_name", "Please provide a name and select an image.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Please provide a name and select an image.")
		return
	}
	if file.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 10MB or smaller.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Upload failed.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Upload failed.")
		return
	}

	url, key, err := h.images.Upload(c.Request.Context(), data)
	if err != nil {
		if httperr.IsBusiness(err, "unsupported_image") {
			httperr.BadRequest(c, "unsupported_image", "Image must be JPEG, PNG or WebP.")
			return
		}
		httperr.Internal(c, "upload_failed", "Upload failed.")
		return
	}

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)

	style := models.Hairstyle{
		Name:        name,
		ImageURL:    url,
		ImageKey:    key,
		Price:       price,
		Category:    strings.ToLower(strings.TrimSpace(c.PostForm("category"))),
		Description: strings.TrimSpace(c.PostForm("description")),
	}

	if err := h.db.Create(&style).Error; err != nil {
		httperr.Internal(c, "failed_to_create_hairstyle", "Upload failed.")
		return
	}

	h.gallery.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "hairstyle_created",
		Entity:   "hairstyle",
		EntityID: &style.ID,
		Metadata: map[string]any{"name": style.Name},
	})

	httpresp.Created(c, style)
}

// ======================================================
// DELETE
// ======================================================

// Delete removes the catalog entry permanently. Appointments that reference
// the style keep their denormalized name and are not touched.
func (h *HairstyleHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid hairstyle id.")
		return
	}

	var style models.Hairstyle
	if err := h.db.First(&style, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "hairstyle_not_found", "Hairstyle not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_hairstyle", "Failed to delete hairstyle.")
		return
	}

	if err := h.db.Delete(&style).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_hairstyle", "Failed to delete hairstyle.")
		return
	}

	// Bucket cleanup is best effort; the record is already gone.
	if err := h.images.Delete(c.Request.Context(), style.ImageKey); err != nil {
		c.Error(err)
	}

	h.gallery.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "hairstyle_deleted",
		Entity:   "hairstyle",
		EntityID: &style.ID,
		Metadata: map[string]any{"name": style.Name},
	})

	httpresp.OK(c, gin.H{"deleted": style.ID})
}
