package domain

import "github.com/shopspring/decimal"

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformTelegram  Platform = "telegram"
	PlatformVK        Platform = "vk"
	PlatformTwitter   Platform = "twitter"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformTelegram, PlatformVK, PlatformTwitter:
		return true
	}
	return false
}

type Category string

const (
	CategoryLikes     Category = "likes"
	CategoryFollowers Category = "followers"
	CategoryViews     Category = "views"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryLikes, CategoryFollowers, CategoryViews:
		return true
	}
	return false
}

// PricingUnit is the batch size the service price is quoted for:
// likes are priced per 100, everything else per 1000.
func (c Category) PricingUnit() int64 {
	if c == CategoryLikes {
		return 100
	}
	return 1000
}

// Service is a catalog entry. Loaded once at startup and never mutated.
type Service struct {
	ID          string
	Name        string
	Platform    Platform
	Category    Category
	Price       decimal.Decimal // per PricingUnit, in tenge
	MinQuantity int
	MaxQuantity int
	StartTime   string
	Speed       string
	Guarantee   string
}
