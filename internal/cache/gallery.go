package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/UticaHairSalon/salon-booking/internal/models"
)

const (
	galleryKey = "gallery:hairstyles"
	galleryTTL = 5 * time.Minute
)

// GalleryCache holds the public hairstyle listing. A nil client disables
// every operation, so callers never need to branch on availability.
type GalleryCache struct {
	client *redis.Client
}

func NewGalleryCache(client *redis.Client) *GalleryCache {
	return &GalleryCache{client: client}
}

func (c *GalleryCache) Get(ctx context.Context) ([]models.Hairstyle, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, galleryKey).Bytes()
	if err != nil {
		return nil, false
	}

	var styles []models.Hairstyle
	if err := json.Unmarshal(raw, &styles); err != nil {
		return nil, false
	}

	return styles, true
}

func (c *GalleryCache) Set(ctx context.Context, styles []models.Hairstyle) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(styles)
	if err != nil {
		return
	}

	c.client.Set(ctx, galleryKey, raw, galleryTTL)
}

func (c *GalleryCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	c.client.Del(ctx, galleryKey)
}
