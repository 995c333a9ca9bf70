package service

import "errors"

// User-facing business errors; handlers map these to 400/403/404 responses.
var (
	ErrEmptyTelegramID  = errors.New("Не указан Telegram ID")
	ErrInvalidRating    = errors.New("Рейтинг должен быть от 1 до 5")
	ErrInvalidStars     = errors.New("Количество Stars должно быть положительным")
	ErrDonationTooLarge = errors.New("Максимум 10 Stars за один раз")
	ErrUnknownKind      = errors.New("Неизвестный тип продвижения")
	ErrUnknownSource    = errors.New("Неизвестный источник оплаты")
	ErrNotAppOwner      = errors.New("Приложение принадлежит другому разработчику")
	ErrDuplicateAppName = errors.New("Приложение с таким названием уже существует для этого разработчика")
)
