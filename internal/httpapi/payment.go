package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"smmstore/internal/domain"
)

type paymentUserData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type paymentRequestBody struct {
	Amount        decimal.Decimal `json:"amount"`
	Service       string          `json:"service"`
	UserData      paymentUserData `json:"userData"`
	PaymentMethod string          `json:"paymentMethod"`
	Quantity      int             `json:"quantity"`
	URL           string          `json:"url"`
}

type paymentResponse struct {
	Success       bool                 `json:"success"`
	Message       string               `json:"message"`
	TransactionID string               `json:"transactionId,omitempty"`
	Status        domain.OutcomeStatus `json:"status"`
}

func (s *Server) handlePayment(c *gin.Context) {
	var body paymentRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse{
			Success: false,
			Message: "Invalid request body",
			Status:  domain.OutcomeFailed,
		})
		return
	}

	req := domain.PaymentRequest{
		Amount:    body.Amount,
		ServiceID: body.Service,
		Quantity:  body.Quantity,
		URL:       body.URL,
		UserData: domain.UserData{
			Name:  body.UserData.Name,
			Email: body.UserData.Email,
		},
		PaymentMethod: body.PaymentMethod,
	}

	outcome := s.checkout.Submit(c.Request.Context(), req)

	status := http.StatusOK
	if !outcome.Success {
		// validation failures and declines share the 400 envelope
		status = http.StatusBadRequest
	}
	c.JSON(status, paymentResponse{
		Success:       outcome.Success,
		Message:       outcome.Message,
		TransactionID: outcome.TransactionID,
		Status:        outcome.Status,
	})
}
