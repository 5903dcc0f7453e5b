package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"smmstore/internal/auth"
	"smmstore/internal/domain"
	"smmstore/internal/infrastructure/payment"
	"smmstore/internal/service"
)

// Server is the storefront HTTP boundary: the payment endpoint, the catalog,
// the consultation form and the identity routes. CORS is open to any origin,
// the storefront UI is served from elsewhere.
type Server struct {
	Router *gin.Engine

	// Health is optional; when set it backs GET /health.
	Health func() map[string]string

	checkout *service.CheckoutService
	identity *auth.Identity
}

func NewServer(checkout *service.CheckoutService, identity *auth.Identity) *Server {
	s := &Server{checkout: checkout, identity: identity}

	r := gin.New()
	r.Use(gin.Logger())
	// Unexpected failures get a generic envelope, internals stay server-side.
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, paymentResponse{
			Success: false,
			Message: payment.MsgInternalError,
			Status:  domain.OutcomeFailed,
		})
	}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, paymentResponse{
			Success: false,
			Message: "Method not allowed",
			Status:  domain.OutcomeFailed,
		})
	})

	r.POST("/api/payment", s.handlePayment)
	r.OPTIONS("/api/payment", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.GET("/api/services", s.handleServices)
	r.GET("/api/platforms", s.handlePlatforms)
	r.POST("/api/consultation", s.handleConsultation)

	r.POST("/api/auth/signup", s.handleSignUp)
	r.POST("/api/auth/signin", s.handleSignIn)
	r.POST("/api/auth/signout", s.handleSignOut)
	r.GET("/api/auth/session", s.handleSession)

	r.GET("/health", s.handleHealth)

	s.Router = r
	return s
}

func (s *Server) Run(addr string) error {
	return s.Router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.Health != nil {
		c.JSON(http.StatusOK, s.Health())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
