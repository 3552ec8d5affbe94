package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// GetEventQR génère un QR code PNG pointant vers la page publique de
// l'événement, pour les affiches imprimées en boutique.
func GetEventQR(c *gin.Context) {
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

	baseURL := os.Getenv("FRONTEND_URL")
	if baseURL == "" {
		baseURL = "https://sentcandles.com"
	}

	size := 256
	if s, err := strconv.Atoi(c.Query("size")); err == nil && s >= 64 && s <= 1024 {
		size = s
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/events/%d", baseURL, id), qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
