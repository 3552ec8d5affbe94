package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"sent_back_end/internal/catalog"
	"sent_back_end/internal/config"
	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
	"sent_back_end/internal/routes"
	"sent_back_end/internal/services"
	"sent_back_end/internal/store"
	"sent_back_end/internal/utils"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	bootstrapAdmin()

	// Ré-indexe le catalogue dans Elasticsearch (l'index ne survit pas
	// forcément à un redémarrage du cluster)
	go seedSearchIndex()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Sent. lancé sur le port", port)
	r.Run(":" + port)
}

func seedSearchIndex() {
	products := catalog.NewService(store.Scylla{}).Products()
	for _, p := range products {
		services.IndexProduct(p)
	}
	log.Printf("✅ Index de recherche alimenté (%d produits)", len(products))
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}

// bootstrapAdmin crée le compte admin initial depuis ADMIN_EMAIL /
// ADMIN_PASSWORD s'il n'existe pas encore.
func bootstrapAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	db := store.Scylla{}
	if _, err := db.UserIDByEmail(email); err == nil {
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("⚠️ Impossible de hasher le mot de passe admin: %v", err)
		return
	}

	user := models.User{
		ID:       gocql.TimeUUID(),
		Email:    email,
		Password: hashed,
		Name:     "Admin",
		Role:     "admin",
	}
	if err := db.InsertUser(user); err != nil {
		log.Printf("⚠️ Impossible de créer le compte admin: %v", err)
		return
	}
	log.Println("✅ Compte admin initial créé:", email)
}
