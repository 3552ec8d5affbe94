package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sent_back_end/internal/catalog"
	"sent_back_end/internal/models"
	"sent_back_end/internal/store"
)

// fakeCatalogStore sert un petit jeu de données en mémoire pour tester la
// surface HTTP publique sans base.
type fakeCatalogStore struct{}

var errUnavailable = errors.New("unavailable")

func (fakeCatalogStore) Products() ([]store.RawProduct, error) {
	return []store.RawProduct{
		{Row: models.ProductRow{ID: 1, Name: "Amber Glow", CategorySlug: "classics", Featured: true}},
		{Row: models.ProductRow{ID: 2, Name: "Cedar Night", CategorySlug: "classics"}},
	}, nil
}

func (fakeCatalogStore) ProductByID(id int) (*store.RawProduct, error) {
	if id != 1 {
		return nil, errUnavailable
	}
	return &store.RawProduct{Row: models.ProductRow{ID: 1, Name: "Amber Glow"}}, nil
}

func (fakeCatalogStore) ProductsByCategory(slug string) ([]store.RawProduct, error) {
	return nil, nil
}
func (fakeCatalogStore) FeaturedProducts() ([]store.RawProduct, error) {
	return []store.RawProduct{
		{Row: models.ProductRow{ID: 1, Name: "Amber Glow", CategorySlug: "classics", Featured: true}},
	}, nil
}
func (fakeCatalogStore) Categories() ([]models.CategoryRow, error) {
	return []models.CategoryRow{{Slug: "classics", Name: "Classics"}}, nil
}
func (fakeCatalogStore) Events() ([]store.RawEvent, error)           { return nil, nil }
func (fakeCatalogStore) EventByID(id int) (*store.RawEvent, error)   { return nil, errUnavailable }
func (fakeCatalogStore) AboutContent() (*models.AboutContent, error) { return nil, errUnavailable }
func (fakeCatalogStore) ContactInfo() (*models.ContactInfo, error)   { return nil, errUnavailable }
func (fakeCatalogStore) SocialMedia() (*models.SocialMedia, error)   { return nil, errUnavailable }
func (fakeCatalogStore) SiteInfo() (*models.SiteInfo, error)         { return nil, errUnavailable }
func (fakeCatalogStore) HeroContent() (*models.HeroRow, error)       { return nil, errUnavailable }
func (fakeCatalogStore) Features() ([]models.Feature, error)         { return nil, nil }
func (fakeCatalogStore) NavLinks() ([]models.LinkRow, error)         { return nil, nil }
func (fakeCatalogStore) FooterLinks() ([]models.LinkRow, error)      { return nil, nil }
func (fakeCatalogStore) Assets() ([]models.AssetRow, error)          { return nil, nil }
func (fakeCatalogStore) AssetByKey(key string) (*models.AssetRow, error) {
	return nil, errUnavailable
}

func withFakeCatalog(t *testing.T) {
	t.Helper()
	orig := Catalog
	Catalog = catalog.NewService(fakeCatalogStore{})
	t.Cleanup(func() { Catalog = orig })
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAllProducts(t *testing.T) {
	withFakeCatalog(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetAllProducts)

	w := get(r, "/api/products")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 || products[0].Name != "Amber Glow" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestGetFeaturedProducts(t *testing.T) {
	withFakeCatalog(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products/featured", GetFeaturedProducts)

	w := get(r, "/api/products/featured")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "Amber Glow" || !products[0].Featured {
		t.Errorf("unexpected featured products: %+v", products)
	}
}

func TestGetProductByID(t *testing.T) {
	withFakeCatalog(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products/:id", GetProductByID)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "existing product", path: "/api/products/1", wantStatus: http.StatusOK},
		{name: "missing product", path: "/api/products/99", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/api/products/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := get(r, tt.path); w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

// Le store des contenus est injoignable : l'endpoint doit quand même servir
// un 200 avec le contenu de repli.
func TestGetSiteInfoServesFallback(t *testing.T) {
	withFakeCatalog(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/content/site-info", GetSiteInfo)

	w := get(r, "/api/content/site-info")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var info models.SiteInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.Name != "Sent." || info.Tagline != "Scented Candles" {
		t.Errorf("expected fallback site info, got %+v", info)
	}
}

func TestGetCategories(t *testing.T) {
	withFakeCatalog(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/categories", GetCategories)

	w := get(r, "/api/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var cats []models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 || cats[0].ID != "classics" {
		t.Errorf("unexpected categories: %+v", cats)
	}
}
