package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/foodfast/foodfast-backend/internal/domain/product"
	"github.com/foodfast/foodfast-backend/internal/models"
)

const (
	keyAllProducts = "products:all"
	notFoundMarker = "notfound"
)

// CachedProductRepository is a read-through cache over the product
// repository. Redis failures are logged and the call falls back to the
// database; the cache never turns a working read into an error.
type CachedProductRepository struct {
	repo  domain.Repository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedProductRepository(repo domain.Repository, rdb *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{
		repo:  repo,
		redis: rdb,
		ttl:   5 * time.Minute,
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *CachedProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	key := productKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, nil
		}
		var p models.Product
		if uerr := json.Unmarshal(data, &p); uerr == nil {
			return &p, nil
		} else {
			log.Printf("failed to unmarshal cached product (continuing with DB): %v", uerr)
		}
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		log.Printf("redis error (continuing with DB): %v", err)
	}

	p, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p == nil {
		if setErr := c.redis.Set(ctx, key, notFoundMarker, time.Minute).Err(); setErr != nil {
			log.Printf("failed to cache notfound: %v", setErr)
		}
		return nil, nil
	}

	if jsonData, err := json.Marshal(p); err == nil {
		if setErr := c.redis.Set(ctx, key, jsonData, c.ttl).Err(); setErr != nil {
			log.Printf("failed to cache product: %v", setErr)
		}
	}

	return p, nil
}

func (c *CachedProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	data, err := c.redis.Get(ctx, keyAllProducts).Bytes()
	if err == nil {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("redis error (continuing with DB): %v", err)
	}

	products, err := c.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(products); err == nil {
		c.redis.Set(ctx, keyAllProducts, jsonData, c.ttl)
	}

	return products, nil
}

func (c *CachedProductRepository) Save(ctx context.Context, p *models.Product) error {
	if err := c.repo.Save(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p.ID)
	return nil
}

func (c *CachedProductRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return c.repo.ExistsByID(ctx, id)
}

func (c *CachedProductRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := c.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedProductRepository) invalidate(ctx context.Context, id uint) {
	if err := c.redis.Del(ctx, productKey(id), keyAllProducts).Err(); err != nil {
		log.Printf("failed to invalidate product cache: %v", err)
	}
}

// Compile-time check
var _ domain.Repository = (*CachedProductRepository)(nil)
