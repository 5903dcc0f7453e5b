package catalog

import (
	"github.com/shopspring/decimal"

	"smmstore/internal/domain"
)

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// services is the full catalog. Immutable after process start.
var services = []domain.Service{
	{
		ID: "ig-likes", Name: "Лайки Instagram",
		Platform: domain.PlatformInstagram, Category: domain.CategoryLikes,
		Price: price(500), MinQuantity: 100, MaxQuantity: 50000,
		StartTime: "5-15 минут", Speed: "до 10 000 в день", Guarantee: "30 дней",
	},
	{
		ID: "ig-followers", Name: "Подписчики Instagram",
		Platform: domain.PlatformInstagram, Category: domain.CategoryFollowers,
		Price: price(2900), MinQuantity: 100, MaxQuantity: 100000,
		StartTime: "10-30 минут", Speed: "до 5 000 в день", Guarantee: "60 дней",
	},
	{
		ID: "ig-views", Name: "Просмотры Reels",
		Platform: domain.PlatformInstagram, Category: domain.CategoryViews,
		Price: price(350), MinQuantity: 1000, MaxQuantity: 1000000,
		StartTime: "0-10 минут", Speed: "до 100 000 в день", Guarantee: "без списаний",
	},
	{
		ID: "tt-likes", Name: "Лайки TikTok",
		Platform: domain.PlatformTikTok, Category: domain.CategoryLikes,
		Price: price(450), MinQuantity: 100, MaxQuantity: 50000,
		StartTime: "5-15 минут", Speed: "до 20 000 в день", Guarantee: "30 дней",
	},
	{
		ID: "tt-followers", Name: "Подписчики TikTok",
		Platform: domain.PlatformTikTok, Category: domain.CategoryFollowers,
		Price: price(2500), MinQuantity: 100, MaxQuantity: 100000,
		StartTime: "10-30 минут", Speed: "до 10 000 в день", Guarantee: "60 дней",
	},
	{
		ID: "tt-views", Name: "Просмотры TikTok",
		Platform: domain.PlatformTikTok, Category: domain.CategoryViews,
		Price: price(200), MinQuantity: 1000, MaxQuantity: 5000000,
		StartTime: "0-5 минут", Speed: "до 500 000 в день", Guarantee: "без списаний",
	},
	{
		ID: "yt-views", Name: "Просмотры YouTube",
		Platform: domain.PlatformYouTube, Category: domain.CategoryViews,
		Price: price(900), MinQuantity: 1000, MaxQuantity: 1000000,
		StartTime: "30-60 минут", Speed: "до 50 000 в день", Guarantee: "пожизненная",
	},
	{
		ID: "yt-likes", Name: "Лайки YouTube",
		Platform: domain.PlatformYouTube, Category: domain.CategoryLikes,
		Price: price(800), MinQuantity: 100, MaxQuantity: 20000,
		StartTime: "15-30 минут", Speed: "до 5 000 в день", Guarantee: "30 дней",
	},
	{
		ID: "tg-followers", Name: "Подписчики Telegram",
		Platform: domain.PlatformTelegram, Category: domain.CategoryFollowers,
		Price: price(1900), MinQuantity: 100, MaxQuantity: 200000,
		StartTime: "5-20 минут", Speed: "до 20 000 в день", Guarantee: "45 дней",
	},
	{
		ID: "tg-views", Name: "Просмотры Telegram",
		Platform: domain.PlatformTelegram, Category: domain.CategoryViews,
		Price: price(150), MinQuantity: 1000, MaxQuantity: 1000000,
		StartTime: "0-5 минут", Speed: "до 200 000 в день", Guarantee: "без списаний",
	},
	{
		ID: "vk-likes", Name: "Лайки ВКонтакте",
		Platform: domain.PlatformVK, Category: domain.CategoryLikes,
		Price: price(300), MinQuantity: 100, MaxQuantity: 30000,
		StartTime: "5-15 минут", Speed: "до 10 000 в день", Guarantee: "30 дней",
	},
	{
		ID: "vk-followers", Name: "Подписчики ВКонтакте",
		Platform: domain.PlatformVK, Category: domain.CategoryFollowers,
		Price: price(2200), MinQuantity: 100, MaxQuantity: 50000,
		StartTime: "10-30 минут", Speed: "до 3 000 в день", Guarantee: "60 дней",
	},
	{
		ID: "tw-likes", Name: "Лайки Twitter",
		Platform: domain.PlatformTwitter, Category: domain.CategoryLikes,
		Price: price(700), MinQuantity: 100, MaxQuantity: 20000,
		StartTime: "10-30 минут", Speed: "до 5 000 в день", Guarantee: "30 дней",
	},
	{
		ID: "tw-followers", Name: "Подписчики Twitter",
		Platform: domain.PlatformTwitter, Category: domain.CategoryFollowers,
		Price: price(3500), MinQuantity: 100, MaxQuantity: 50000,
		StartTime: "15-45 минут", Speed: "до 2 000 в день", Guarantee: "60 дней",
	},
}

// All returns a copy of the catalog so callers cannot mutate the backing slice.
func All() []domain.Service {
	out := make([]domain.Service, len(services))
	copy(out, services)
	return out
}

func Find(id string) (domain.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Service{}, false
}

// Filter returns services matching the given platform and category.
// An empty string or "all" matches everything, mirroring the storefront grid.
func Filter(platform, category string) []domain.Service {
	var out []domain.Service
	for _, s := range services {
		matchesPlatform := platform == "" || platform == "all" || string(s.Platform) == platform
		matchesCategory := category == "" || category == "all" || string(s.Category) == category
		if matchesPlatform && matchesCategory {
			out = append(out, s)
		}
	}
	return out
}

func Platforms() []domain.Platform {
	return []domain.Platform{
		domain.PlatformInstagram,
		domain.PlatformTikTok,
		domain.PlatformYouTube,
		domain.PlatformTelegram,
		domain.PlatformVK,
		domain.PlatformTwitter,
	}
}
