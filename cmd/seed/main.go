package main

import (
	"context"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/pavelromci25/nebula-server/internal/config"
	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/repository"
)

// Demo catalog content for local development. Wipes the apps table first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := repository.New(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := repo.DB()

	if _, err := db.ExecContext(ctx, "DELETE FROM star_transactions"); err != nil {
		log.Fatalf("Failed to clear star_transactions: %v", err)
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM apps"); err != nil {
		log.Fatalf("Failed to clear apps: %v", err)
	}
	log.Println("Таблица apps очищена")

	const demoDeveloperID = "12345"

	if _, err := db.ExecContext(ctx, `
		INSERT INTO allowed_developers (telegram_id) VALUES ($1)
		ON CONFLICT (telegram_id) DO NOTHING`, demoDeveloperID); err != nil {
		log.Fatalf("Failed to allow demo developer: %v", err)
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO developers (user_id, referral_code) VALUES ($1, 'NEBULA01')
		ON CONFLICT (user_id) DO NOTHING`, demoDeveloperID); err != nil {
		log.Fatalf("Failed to create demo developer: %v", err)
	}

	for _, app := range demoApps(demoDeveloperID) {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO apps (
				id, type, name, short_description, long_description,
				category, additional_categories, icon, banner, gallery, video,
				developer_id, platforms, age_rating, in_app_purchases,
				contact_info, status,
				clicks, user_rating, catalog_rating, telegram_stars_donations, date_added
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
				$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
			)`,
			app.ID, app.Type, app.Name, app.ShortDescription, app.LongDescription,
			app.Category, app.AdditionalCategories, app.Icon, app.Banner, app.Gallery, app.Video,
			app.DeveloperID, app.Platforms, app.AgeRating, app.InAppPurchases,
			app.ContactInfo, app.Status,
			app.Clicks, app.UserRating, app.CatalogRating, app.StarsDonations, app.DateAdded,
		); err != nil {
			log.Fatalf("Failed to insert app %s: %v", app.Name, err)
		}
	}

	log.Println("Мок-данные успешно добавлены в таблицу apps")
}

func demoApps(developerID string) []model.App {
	placeholder := func(s string) *string { return &s }
	video := placeholder("https://www.youtube.com/embed/dQw4w9WgXcQ")
	banner := placeholder("https://via.placeholder.com/300x150")

	return []model.App{
		{
			ID:                   "1",
			Type:                 model.AppTypeGame,
			Name:                 "Тетрис",
			ShortDescription:     "Классическая игра-головоломка.",
			LongDescription:      placeholder("Тетрис — легендарная игра-головоломка, где вам нужно складывать падающие блоки, чтобы заполнить ряды и набрать очки. Играйте и соревнуйтесь с друзьями!"),
			Category:             "Пазлы",
			AdditionalCategories: pq.StringArray{"Классика"},
			Icon:                 "https://via.placeholder.com/80",
			Banner:               banner,
			Gallery:              pq.StringArray{"https://via.placeholder.com/300", "https://via.placeholder.com/300"},
			Video:                video,
			DeveloperID:          developerID,
			Platforms:            pq.StringArray{"iOS", "Android", "Web"},
			AgeRating:            "3+",
			ContactInfo:          "admin@example.com",
			Status:               model.StatusAdded,
			Clicks:               1200,
			UserRating:           4.5,
			CatalogRating:        4.8,
			StarsDonations:       150,
			DateAdded:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "2",
			Type:                 model.AppTypeGame,
			Name:                 "Змейка",
			ShortDescription:     "Классическая аркада.",
			LongDescription:      placeholder("Змейка — аркадная игра, где вы управляете змейкой, собирая еду и избегая столкновений. Сможете ли вы побить рекорд?"),
			Category:             "Аркады",
			AdditionalCategories: pq.StringArray{"Классика"},
			Icon:                 "https://via.placeholder.com/80",
			Banner:               banner,
			Gallery:              pq.StringArray{"https://via.placeholder.com/300"},
			DeveloperID:          developerID,
			Platforms:            pq.StringArray{"Web"},
			AgeRating:            "3+",
			InAppPurchases:       true,
			ContactInfo:          "admin@example.com",
			Status:               model.StatusAdded,
			Clicks:               900,
			UserRating:           4.2,
			CatalogRating:        4.5,
			StarsDonations:       80,
			DateAdded:            time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "3",
			Type:                 model.AppTypeGame,
			Name:                 "Пазлы 2048",
			ShortDescription:     "Собирайте числа и достигайте 2048!",
			LongDescription:      placeholder("2048 — увлекательная головоломка, где вы соединяете числа, чтобы достичь 2048. Проверьте свои математические навыки!"),
			Category:             "Пазлы",
			AdditionalCategories: pq.StringArray{"Логические"},
			Icon:                 "https://via.placeholder.com/80",
			Banner:               banner,
			Gallery:              pq.StringArray{"https://via.placeholder.com/300", "https://via.placeholder.com/300", "https://via.placeholder.com/300"},
			Video:                video,
			DeveloperID:          developerID,
			Platforms:            pq.StringArray{"iOS", "Android"},
			AgeRating:            "6+",
			ContactInfo:          "admin@example.com",
			Status:               model.StatusAdded,
			Clicks:               1500,
			UserRating:           4.7,
			CatalogRating:        4.9,
			StarsDonations:       200,
			DateAdded:            time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "4",
			Type:                 model.AppTypeGame,
			Name:                 "Словесный Бой",
			ShortDescription:     "Составляйте слова и побеждайте!",
			LongDescription:      placeholder("Словесный Бой — игра, где вы соревнуетесь с другими игроками, составляя слова из букв. Улучшайте свой словарный запас и побеждайте!"),
			Category:             "Словесные",
			AdditionalCategories: pq.StringArray{"Мультиплеер"},
			Icon:                 "https://via.placeholder.com/80",
			Banner:               banner,
			Gallery:              pq.StringArray{"https://via.placeholder.com/300"},
			DeveloperID:          developerID,
			Platforms:            pq.StringArray{"iOS", "Android", "Web"},
			AgeRating:            "12+",
			InAppPurchases:       true,
			ContactInfo:          "admin@example.com",
			Status:               model.StatusAdded,
			Clicks:               600,
			UserRating:           4.0,
			CatalogRating:        4.3,
			StarsDonations:       50,
			DateAdded:            time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "5",
			Type:                 model.AppTypeGame,
			Name:                 "Шахматы Онлайн",
			ShortDescription:     "Играйте в шахматы с друзьями.",
			LongDescription:      placeholder("Шахматы Онлайн — играйте в классические шахматы с друзьями или случайными соперниками. Улучшайте свои навыки и станьте мастером!"),
			Category:             "Настольные",
			AdditionalCategories: pq.StringArray{"Мультиплеер"},
			Icon:                 "https://via.placeholder.com/80",
			Banner:               banner,
			Gallery:              pq.StringArray{"https://via.placeholder.com/300", "https://via.placeholder.com/300"},
			DeveloperID:          developerID,
			Platforms:            pq.StringArray{"Web"},
			AgeRating:            "6+",
			ContactInfo:          "admin@example.com",
			Status:               model.StatusAdded,
			Clicks:               1000,
			UserRating:           4.8,
			CatalogRating:        4.7,
			StarsDonations:       120,
			DateAdded:            time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}
