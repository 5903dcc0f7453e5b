package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smmstore/internal/domain"
)

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]struct{})
	for _, s := range all {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.True(t, s.Platform.Valid(), "service %s has platform %q", s.ID, s.Platform)
		assert.True(t, s.Category.Valid(), "service %s has category %q", s.ID, s.Category)
		assert.True(t, s.Price.IsPositive(), "service %s has price %s", s.ID, s.Price)
		assert.Greater(t, s.MinQuantity, 0, "service %s", s.ID)
		assert.GreaterOrEqual(t, s.MaxQuantity, s.MinQuantity, "service %s", s.ID)

		_, dup := seen[s.ID]
		assert.False(t, dup, "duplicate service id %s", s.ID)
		seen[s.ID] = struct{}{}
	}
}

func TestEveryPlatformIsCovered(t *testing.T) {
	covered := make(map[domain.Platform]bool)
	for _, s := range All() {
		covered[s.Platform] = true
	}
	for _, p := range Platforms() {
		assert.True(t, covered[p], "no services for platform %s", p)
	}
}

func TestFind(t *testing.T) {
	s, ok := Find("ig-likes")
	require.True(t, ok)
	assert.Equal(t, domain.PlatformInstagram, s.Platform)
	assert.Equal(t, domain.CategoryLikes, s.Category)

	_, ok = Find("no-such-service")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	assert.Len(t, Filter("", ""), len(All()))
	assert.Len(t, Filter("all", "all"), len(All()))

	for _, s := range Filter("instagram", "") {
		assert.Equal(t, domain.PlatformInstagram, s.Platform)
	}
	for _, s := range Filter("", "views") {
		assert.Equal(t, domain.CategoryViews, s.Category)
	}

	likes := Filter("instagram", "likes")
	require.Len(t, likes, 1)
	assert.Equal(t, "ig-likes", likes[0].ID)

	assert.Empty(t, Filter("myspace", ""))
}

func TestAllReturnsACopy(t *testing.T) {
	first := All()
	first[0].ID = "mutated"

	again := All()
	assert.NotEqual(t, "mutated", again[0].ID)
}
