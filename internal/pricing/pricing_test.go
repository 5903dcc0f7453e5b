package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"smmstore/internal/domain"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		price    int64
		quantity int
		want     string
	}{
		{
			name:     "likes are priced per 100",
			category: domain.CategoryLikes,
			price:    500,
			quantity: 250,
			want:     "1250",
		},
		{
			name:     "followers are priced per 1000",
			category: domain.CategoryFollowers,
			price:    2900,
			quantity: 1000,
			want:     "2900",
		},
		{
			name:     "views are priced per 1000",
			category: domain.CategoryViews,
			price:    200,
			quantity: 5000,
			want:     "1000",
		},
		{
			name:     "fractional batch",
			category: domain.CategoryFollowers,
			price:    2000,
			quantity: 1500,
			want:     "3000",
		},
		{
			name:     "zero quantity costs nothing",
			category: domain.CategoryLikes,
			price:    500,
			quantity: 0,
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Service{
				Category: tt.category,
				Price:    decimal.NewFromInt(tt.price),
			}
			got := Total(s, tt.quantity)
			want := decimal.RequireFromString(tt.want)
			require.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestTotalFollowsQuantity(t *testing.T) {
	s := domain.Service{Category: domain.CategoryViews, Price: decimal.NewFromInt(900)}

	// doubling the quantity doubles the price
	single := Total(s, 1000)
	double := Total(s, 2000)
	require.True(t, double.Equal(single.Mul(decimal.NewFromInt(2))))
}
