package ranking

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelromci25/nebula-server/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		app  model.App
		want float64
	}{
		{
			name: "zero app scores zero",
			app:  model.App{},
			want: 0,
		},
		{
			name: "ratings only",
			app:  model.App{UserRating: 4.5, CatalogRating: 4.0},
			want: 0.2*4.5 + 0.2*4.0,
		},
		{
			name: "donations dominate",
			app:  model.App{UserRating: 5, CatalogRating: 5, StarsDonations: 100},
			want: 0.2*5 + 0.2*5 + 0.3*100,
		},
		{
			name: "clicks are a light tail",
			app:  model.App{Clicks: 10000},
			want: 0.0001 * 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(&tt.app), 1e-9)
		})
	}
}

func TestCatalogRank(t *testing.T) {
	// Donation totals from the demo catalog: 200 > 150 > 80.
	apps := []model.App{
		{ID: "1", Name: "Тетрис", StarsDonations: 150, Clicks: 1200},
		{ID: "2", Name: "Змейка", StarsDonations: 80, Clicks: 900},
		{ID: "3", Name: "Пазлы 2048", StarsDonations: 200, Clicks: 1500},
	}

	assert.Equal(t, 1, CatalogRank(apps, "3"))
	assert.Equal(t, 2, CatalogRank(apps, "1"))
	assert.Equal(t, 3, CatalogRank(apps, "2"))
	assert.Equal(t, 0, CatalogRank(apps, "missing"))
}

func TestCatalogRankDoesNotReorderInput(t *testing.T) {
	apps := []model.App{
		{ID: "low"},
		{ID: "high", StarsDonations: 10},
	}

	CatalogRank(apps, "high")

	assert.Equal(t, "low", apps[0].ID)
	assert.Equal(t, "high", apps[1].ID)
}

func TestCatalogRankTieBreaksByID(t *testing.T) {
	apps := []model.App{
		{ID: "b", StarsDonations: 50},
		{ID: "a", StarsDonations: 50},
		{ID: "c", StarsDonations: 50},
	}

	assert.Equal(t, 1, CatalogRank(apps, "a"))
	assert.Equal(t, 2, CatalogRank(apps, "b"))
	assert.Equal(t, 3, CatalogRank(apps, "c"))
}

func TestCategoryRank(t *testing.T) {
	apps := []model.App{
		{ID: "1", Category: "Пазлы", StarsDonations: 150},
		{ID: "2", Category: "Аркады", StarsDonations: 80},
		{ID: "3", Category: "Пазлы", StarsDonations: 200},
	}

	assert.Equal(t, 1, CategoryRank(apps, "Пазлы", "3"))
	assert.Equal(t, 2, CategoryRank(apps, "Пазлы", "1"))
	assert.Equal(t, 1, CategoryRank(apps, "Аркады", "2"))
	// Not in that category at all.
	assert.Equal(t, 0, CategoryRank(apps, "Аркады", "1"))
}

func TestAdditionalRank(t *testing.T) {
	apps := []model.App{
		{ID: "1", Category: "Пазлы", AdditionalCategories: pq.StringArray{"Классика"}, StarsDonations: 150},
		{ID: "2", Category: "Аркады", AdditionalCategories: pq.StringArray{"Классика"}, StarsDonations: 80},
		{ID: "3", Category: "Пазлы", AdditionalCategories: pq.StringArray{"Логические"}, StarsDonations: 200},
	}

	assert.Equal(t, 1, AdditionalRank(apps, "Классика", "1"))
	assert.Equal(t, 2, AdditionalRank(apps, "Классика", "2"))
	assert.Equal(t, 1, AdditionalRank(apps, "Логические", "3"))
	assert.Equal(t, 0, AdditionalRank(apps, "Классика", "3"))
}

func TestBuildStats(t *testing.T) {
	all := []model.App{
		{ID: "1", Name: "Тетрис", Category: "Пазлы", AdditionalCategories: pq.StringArray{"Классика"},
			StarsDonations: 150, Clicks: 1200, Platforms: pq.StringArray{"iOS", "Web"}},
		{ID: "2", Name: "Змейка", Category: "Аркады", AdditionalCategories: pq.StringArray{"Классика"},
			StarsDonations: 80, Clicks: 900},
		{ID: "3", Name: "Пазлы 2048", Category: "Пазлы", StarsDonations: 200, Clicks: 1500},
	}
	owned := all[:1]

	stats := BuildStats(owned, all)
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, "1", s.AppID)
	assert.Equal(t, "Тетрис", s.Name)
	assert.Equal(t, int64(1200), s.Clicks)
	assert.Equal(t, int64(150), s.TelegramStars)
	assert.Equal(t, 2, s.CatalogRank)
	assert.Equal(t, 2, s.CategoryRank)
	require.Len(t, s.AdditionalCategoryRanks, 1)
	assert.Equal(t, "Классика", s.AdditionalCategoryRanks[0].Category)
	assert.Equal(t, 1, s.AdditionalCategoryRanks[0].Rank)
	assert.Equal(t, []string{"iOS", "Web"}, s.Platforms)
}

func TestBuildStatsEmptyOwned(t *testing.T) {
	stats := BuildStats(nil, []model.App{{ID: "1"}})
	assert.Empty(t, stats)
}
