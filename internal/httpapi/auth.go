package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smmstore/internal/auth"
)

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (s *Server) handleSignUp(c *gin.Context) {
	var body credentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := s.identity.SignUp(c.Request.Context(), body.Email, body.Password, body.Name)
	if errors.Is(err, auth.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-up failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleSignIn(c *gin.Context) {
	var body credentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := s.identity.SignIn(c.Request.Context(), body.Email, body.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleSignOut(c *gin.Context) {
	if err := s.identity.SignOut(c.Request.Context(), bearerToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleSession(c *gin.Context) {
	state, err := s.identity.Session(c.Request.Context(), bearerToken(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": state.Authenticated,
		"name":          state.Name,
		"email":         state.Email,
	})
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
