package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sent_back_end/internal/admin"
	"sent_back_end/internal/catalog"
)

type categoryInput struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Slug == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fields 'slug' and 'name' are required"})
		return
	}

	category, err := Orchestrator.CreateCategory(input.Slug, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.InvalidateCatalogCache()
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := Orchestrator.UpdateCategory(c.Param("slug"), input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.InvalidateCatalogCache()
	c.JSON(http.StatusOK, category)
}

// DeleteCategory refuse la suppression tant que des produits pointent
// encore vers la catégorie.
func DeleteCategory(c *gin.Context) {
	slug := c.Param("slug")

	if admin.CategoryInUse(Catalog.Products(), slug) {
		c.JSON(http.StatusConflict, gin.H{"error": "Category is in use by one or more products"})
		return
	}

	if err := Orchestrator.DeleteCategory(slug); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.InvalidateCatalogCache()
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
