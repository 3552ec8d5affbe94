package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sent_back_end/internal/admin"
	"sent_back_end/internal/catalog"
	"sent_back_end/internal/services"
)

// reindexProduct relit le produit en forme front et le pousse dans
// Elasticsearch (asynchrone, l'échec est seulement loggué).
func reindexProduct(id int) {
	if p := Catalog.ProductByID(id); p != nil {
		services.IndexProduct(*p)
	}
}

// 🟢 Créer un produit (admin)
func CreateProduct(c *gin.Context) {
	var input admin.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := Orchestrator.CreateProduct(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.InvalidateCatalogCache()
	go reindexProduct(row.ID)

	c.JSON(http.StatusCreated, gin.H{"id": row.ID})
}

// 🟡 Mettre à jour un produit (remplacement complet des lignes enfants)
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input admin.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Orchestrator.UpdateProduct(id, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.InvalidateCatalogCache()
	go reindexProduct(id)

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// 🔴 Supprimer un produit
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := Orchestrator.DeleteProduct(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.InvalidateCatalogCache()
	go services.DeleteProductIndex(id)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
