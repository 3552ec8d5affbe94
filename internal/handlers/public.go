package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sent_back_end/internal/admin"
	"sent_back_end/internal/catalog"
	"sent_back_end/internal/models"
	"sent_back_end/internal/services"
	"sent_back_end/internal/store"
)

// Couche d'accès partagée par tous les handlers : le store Scylla est
// sans état, la façade catalogue et l'orchestrateur admin s'appuient
// dessus.
var (
	db           = store.Scylla{}
	Catalog      = catalog.NewService(db)
	Orchestrator = admin.NewOrchestrator(db)
)

//
// --- PRODUITS (lecture publique) ---
//

func GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.Products())
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product := Catalog.ProductByID(id)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func GetProductsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.ProductsByCategory(c.Param("slug")))
}

func GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.FeaturedProducts())
}

// SearchProducts interroge Elasticsearch, et retombe sur un filtre en
// mémoire sur le catalogue si l'index est indisponible.
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results, err := services.SearchProducts(query)
	if err == nil {
		c.JSON(http.StatusOK, results)
		return
	}

	log.Printf("⚠️ Recherche Elastic indisponible, fallback catalogue: %v", err)

	needle := strings.ToLower(query)
	products := Catalog.Products()
	matches := make([]models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Scent), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matches = append(matches, p)
		}
	}
	c.JSON(http.StatusOK, matches)
}

//
// --- CATÉGORIES ---
//

func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.Categories())
}

//
// --- ÉVÉNEMENTS ---
//

func GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.Events())
}

func GetEventByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	event := Catalog.EventByID(id)
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

//
// --- CONTENUS DU SITE ---
//

func GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.SiteInfo())
}

func GetAboutContent(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.AboutContent())
}

func GetContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.ContactInfo())
}

func GetSocialMedia(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.SocialMedia())
}

func GetHeroContent(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.HeroContent())
}

func GetFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.Features())
}

func GetNavLinks(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.NavLinks())
}

func GetFooterLinks(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.FooterLinks())
}

//
// --- ASSETS ---
//

func GetAssets(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.Assets())
}

func GetAssetByKey(c *gin.Context) {
	asset := Catalog.AssetByKey(c.Param("key"))
	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}
	c.JSON(http.StatusOK, asset)
}
