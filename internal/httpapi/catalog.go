package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smmstore/internal/catalog"
	"smmstore/internal/domain"
)

type serviceDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	MinQuantity int     `json:"minQuantity"`
	MaxQuantity int     `json:"maxQuantity"`
	StartTime   string  `json:"startTime"`
	Speed       string  `json:"speed"`
	Guarantee   string  `json:"guarantee"`
}

func toServiceDTO(s domain.Service) serviceDTO {
	return serviceDTO{
		ID:          s.ID,
		Name:        s.Name,
		Platform:    string(s.Platform),
		Category:    string(s.Category),
		Price:       s.Price.InexactFloat64(),
		MinQuantity: s.MinQuantity,
		MaxQuantity: s.MaxQuantity,
		StartTime:   s.StartTime,
		Speed:       s.Speed,
		Guarantee:   s.Guarantee,
	}
}

func (s *Server) handleServices(c *gin.Context) {
	matched := catalog.Filter(c.Query("platform"), c.Query("category"))
	out := make([]serviceDTO, 0, len(matched))
	for _, svc := range matched {
		out = append(out, toServiceDTO(svc))
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

func (s *Server) handlePlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": catalog.Platforms()})
}
