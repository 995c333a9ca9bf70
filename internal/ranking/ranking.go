// Package ranking computes the weighted popularity score used for catalog
// and category leaderboards. Everything here is pure and recomputed on each
// stats request; nothing is cached.
package ranking

import (
	"sort"

	"github.com/pavelromci25/nebula-server/internal/model"
)

// Score weights. Donations dominate, clicks are a light tail.
const (
	weightUserRating    = 0.2
	weightCatalogRating = 0.2
	weightDonations     = 0.3
	weightClicks        = 0.0001
)

// Score returns the popularity score of an app.
func Score(a *model.App) float64 {
	return weightUserRating*a.UserRating +
		weightCatalogRating*a.CatalogRating +
		weightDonations*float64(a.StarsDonations) +
		weightClicks*float64(a.Clicks)
}

// sortByScore orders apps by score descending; equal scores break the tie by
// id ascending so ranks stay reproducible.
func sortByScore(apps []model.App) {
	sort.Slice(apps, func(i, j int) bool {
		si, sj := Score(&apps[i]), Score(&apps[j])
		if si != sj {
			return si > sj
		}
		return apps[i].ID < apps[j].ID
	})
}

func position(apps []model.App, appID string) int {
	for i := range apps {
		if apps[i].ID == appID {
			return i + 1
		}
	}
	return 0
}

// CatalogRank returns the 1-based position of the app in the full catalog,
// or 0 if the app is not present.
func CatalogRank(all []model.App, appID string) int {
	ranked := make([]model.App, len(all))
	copy(ranked, all)
	sortByScore(ranked)
	return position(ranked, appID)
}

// CategoryRank ranks within apps sharing the same primary category.
func CategoryRank(all []model.App, category, appID string) int {
	var scoped []model.App
	for _, a := range all {
		if a.Category == category {
			scoped = append(scoped, a)
		}
	}
	sortByScore(scoped)
	return position(scoped, appID)
}

// AdditionalRank ranks within apps that list the category among their
// additional categories.
func AdditionalRank(all []model.App, category, appID string) int {
	var scoped []model.App
	for _, a := range all {
		for _, c := range a.AdditionalCategories {
			if c == category {
				scoped = append(scoped, a)
				break
			}
		}
	}
	sortByScore(scoped)
	return position(scoped, appID)
}

// CategoryRankEntry is one additional-category leaderboard position.
type CategoryRankEntry struct {
	Category string `json:"category"`
	Rank     int    `json:"rank"`
}

// AppStats is the per-app record the developer stats endpoint returns.
type AppStats struct {
	AppID                   string              `json:"appId"`
	Name                    string              `json:"name"`
	Clicks                  int64               `json:"clicks"`
	TelegramStars           int64               `json:"telegramStars"`
	Complaints              int64               `json:"complaints"`
	CatalogRank             int                 `json:"catalogRank"`
	CategoryRank            int                 `json:"categoryRank"`
	AdditionalCategoryRanks []CategoryRankEntry `json:"additionalCategoryRanks"`
	Platforms               []string            `json:"platforms"`
}

// BuildStats computes stat records for every owned app against the full
// catalog. O(N log N) per owned app; fine at catalog scale, not beyond.
func BuildStats(owned, all []model.App) []AppStats {
	stats := make([]AppStats, 0, len(owned))
	for i := range owned {
		app := &owned[i]

		extra := make([]CategoryRankEntry, 0, len(app.AdditionalCategories))
		for _, cat := range app.AdditionalCategories {
			extra = append(extra, CategoryRankEntry{
				Category: cat,
				Rank:     AdditionalRank(all, cat, app.ID),
			})
		}

		stats = append(stats, AppStats{
			AppID:                   app.ID,
			Name:                    app.Name,
			Clicks:                  app.Clicks,
			TelegramStars:           app.StarsDonations,
			Complaints:              app.Complaints,
			CatalogRank:             CatalogRank(all, app.ID),
			CategoryRank:            CategoryRank(all, app.Category, app.ID),
			AdditionalCategoryRanks: extra,
			Platforms:               app.Platforms,
		})
	}
	return stats
}
