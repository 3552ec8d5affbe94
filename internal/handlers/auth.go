package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"sent_back_end/internal/database"
	"sent_back_end/internal/utils"
)

// ================== LOGIN / LOGOUT / SESSION ==================

// POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Même réponse que l'utilisateur existe ou non : pas d'énumération
	userID, err := db.UserIDByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	user, err := db.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	valid, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid login credentials"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID.String(),
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// POST /api/auth/logout — le token est stateless, le client le jette ;
// on le blackliste côté Redis jusqu'à son expiration naturelle.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && database.RedisClient != nil {
		token := authHeader[7:]
		ctx := context.Background()
		database.RedisClient.Set(ctx, "token_blacklist:"+token, "1", 24*time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/auth/session (protégé par AuthRequired)
func Session(c *gin.Context) {
	userID := c.GetString("user_id")

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	user, err := db.UserByID(gocql.UUID(uid))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID.String(),
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// ================== CHANGE PASSWORD ==================

// POST /api/auth/change-password (protégé par AuthRequired)
func ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if len(input.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "New password must be at least 8 characters."})
		return
	}

	uid, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Invalid session."})
		return
	}
	userID := gocql.UUID(uid)

	user, err := db.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "User not found."})
		return
	}

	valid, err := utils.VerifyPassword(input.CurrentPassword, user.Password)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Current password is incorrect."})
		return
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to update password."})
		return
	}

	if err := db.UpdateUserPassword(userID, hashedPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to update password."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ================== FORGOT / RESET PASSWORD ==================

// POST /api/auth/forgot-password
func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ⚠️ Toujours la même réponse, que l'email existe ou non
	response := gin.H{"success": true, "message": "If this email exists, a reset link has been sent"}

	userID, err := db.UserIDByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusOK, response)
		return
	}

	user, err := db.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusOK, response)
		return
	}

	resetToken, err := generateResetToken()
	if err != nil {
		log.Printf("❌ Erreur génération token reset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset link"})
		return
	}

	// Token valable 1 heure
	ctx := context.Background()
	if err := database.RedisClient.Set(ctx, "reset_token:"+resetToken, userID.String(), 1*time.Hour).Err(); err != nil {
		log.Printf("❌ Erreur sauvegarde token reset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset link"})
		return
	}

	go sendPasswordResetEmail(user.Email, user.Name, resetToken)

	c.JSON(http.StatusOK, response)
}

// POST /api/auth/reset-password
func ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userIDStr, err := database.RedisClient.Get(ctx, "reset_token:"+input.Token).Result()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	if err := db.UpdateUserPassword(gocql.UUID(uid), hashedPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	// Token à usage unique
	database.RedisClient.Del(ctx, "reset_token:"+input.Token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset"})
}

// ================== UTILITAIRES ==================

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func sendPasswordResetEmail(email, name, token string) {
	baseURL := os.Getenv("FRONTEND_URL")
	if baseURL == "" {
		baseURL = "https://sentcandles.com"
	}

	resetLink := fmt.Sprintf("%s/admin/reset-password?token=%s", baseURL, token)
	htmlBody := utils.PasswordResetHTML(name, resetLink)

	if err := utils.SendEmail(email, "Reset your Sent. password", htmlBody); err != nil {
		log.Printf("❌ Erreur envoi email reset à %s: %v", email, err)
	} else {
		log.Printf("✅ Email de réinitialisation envoyé à %s", email)
	}
}
