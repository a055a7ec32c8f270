package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jessism/Fridgy-Backend-sub003/config"
	"github.com/jessism/Fridgy-Backend-sub003/database"
	"github.com/jessism/Fridgy-Backend-sub003/logger"
	"github.com/jessism/Fridgy-Backend-sub003/models"
	"github.com/jessism/Fridgy-Backend-sub003/util"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account and returns a bearer token.
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to process password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		logger.Warn("Registration failed", "email", req.Email, "error", err)
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	token, err := util.GenerateJWT(user.ID, user.Email, config.JWTSecret())
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	logger.Info("User registered", "user_id", user.ID)
	writeData(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login authenticates a user and returns a bearer token.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := util.GenerateJWT(user.ID, user.Email, config.JWTSecret())
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
