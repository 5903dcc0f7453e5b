package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smmstore/internal/domain"
	"smmstore/internal/service"
)

const (
	msgConsultationAccepted = "Заявка отправлена! Мы свяжемся с вами в течение 30 минут."
	msgConsultationMissing  = "Пожалуйста, заполните все обязательные поля"
)

type consultationBody struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Platform string `json:"platform"`
	Message  string `json:"message"`
}

func (s *Server) handleConsultation(c *gin.Context) {
	var body consultationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgConsultationMissing})
		return
	}

	platform := domain.Platform(body.Platform)
	if body.Platform != "" && !platform.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgConsultationMissing})
		return
	}

	err := s.checkout.RequestConsultation(c.Request.Context(), domain.ConsultationRequest{
		Name:     body.Name,
		Contact:  body.Contact,
		Platform: platform,
		Message:  body.Message,
	})
	if errors.Is(err, service.ErrMissingConsultationFields) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgConsultationMissing})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgConsultationMissing})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgConsultationAccepted})
}
