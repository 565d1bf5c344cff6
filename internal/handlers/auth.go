package handlers

import (
	"errors"
	"net/http"

	"property-analyst/internal/auth"
	"property-analyst/internal/database"
	"property-analyst/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler handles broker registration and login
type AuthHandler struct {
	store *database.DB
	auth  *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *database.DB, svc *auth.Service) *AuthHandler {
	return &AuthHandler{store: store, auth: svc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func brokerResponse(b *models.Broker) gin.H {
	return gin.H{"id": b.ID, "name": b.Name, "email": b.Email}
}

// Register creates a broker account and returns a token
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required."})
		return
	}

	if _, err := h.store.GetBrokerByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered."})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed.", "details": err.Error()})
		return
	}

	broker := &models.Broker{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.store.CreateBroker(broker); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed.", "details": err.Error()})
		return
	}

	token, err := h.auth.IssueToken(broker.ID, broker.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed.", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful.",
		"token":   token,
		"broker":  brokerResponse(broker),
	})
}

// Login verifies credentials and returns a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	broker, err := h.store.GetBrokerByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed.", "details": err.Error()})
		return
	}

	if !auth.CheckPassword(broker.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	token, err := h.auth.IssueToken(broker.ID, broker.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed.", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
		"broker":  brokerResponse(broker),
	})
}
