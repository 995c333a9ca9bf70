package model

// MaxAdditionalCategories caps the secondary categories an app may list.
const MaxAdditionalCategories = 2

// Fixed category enumerations, split by app type.
var (
	GameCategories = []string{
		"Аркады",
		"Пазлы",
		"Стратегии",
		"Карточные",
		"Настольные",
		"Словесные",
		"Гонки",
		"Классика",
		"Логические",
		"Мультиплеер",
	}

	AppCategories = []string{
		"Инструменты",
		"Финансы",
		"Образование",
		"Соцсети",
		"Покупки",
		"Продуктивность",
		"Развлечения",
		"Бизнес",
		"Мультиплеер",
	}
)

// ValidCategory reports whether the category is allowed for the app type.
func ValidCategory(t AppType, category string) bool {
	list := AppCategories
	if t == AppTypeGame {
		list = GameCategories
	}
	for _, c := range list {
		if c == category {
			return true
		}
	}
	return false
}
