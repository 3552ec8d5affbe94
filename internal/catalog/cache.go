package catalog

import (
	"context"
	"encoding/json"
	"time"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

const (
	keyProductsAll   = "products:all"
	keyCategoriesAll = "categories:all"

	catalogCacheTTL = time.Hour
)

// Cache Redis pour les listes chaudes du storefront. Un échec Redis est
// silencieux : on retombe simplement sur le store.

func cachedProducts(key string) ([]models.Product, bool) {
	if database.RedisClient == nil {
		return nil, false
	}

	val, err := database.RedisClient.Get(context.Background(), key).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var cached []models.Product
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func cacheProducts(key string, products []models.Product) {
	if database.RedisClient == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		database.RedisClient.Set(context.Background(), key, data, catalogCacheTTL)
	}
}

func cachedCategories() ([]models.Category, bool) {
	if database.RedisClient == nil {
		return nil, false
	}

	val, err := database.RedisClient.Get(context.Background(), keyCategoriesAll).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var cached []models.Category
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func cacheCategories(cats []models.Category) {
	if database.RedisClient == nil {
		return
	}
	if data, err := json.Marshal(cats); err == nil {
		database.RedisClient.Set(context.Background(), keyCategoriesAll, data, catalogCacheTTL)
	}
}

// InvalidateCatalogCache purge les listes mises en cache ; appelé après
// chaque écriture admin touchant le catalogue.
func InvalidateCatalogCache() {
	if database.RedisClient == nil {
		return
	}
	database.RedisClient.Del(context.Background(), keyProductsAll, keyCategoriesAll)
}
