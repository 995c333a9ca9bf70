package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/pavelromci25/nebula-server/internal/config"
	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/service"
)

type Bot struct {
	bot         *tele.Bot
	cfg         *config.Config
	donationSvc *service.DonationService
}

func NewBot(cfg *config.Config, donationSvc *service.DonationService) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Telegram.BotToken,
		Poller: &tele.LongPoller{Timeout: 60 * time.Second},
	}

	bot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:         bot,
		cfg:         cfg,
		donationSvc: donationSvc,
	}

	b.registerHandlers()

	return b, nil
}

func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle(tele.OnCheckout, b.handlePreCheckout)
	b.bot.Handle(tele.OnPayment, b.handleSuccessfulPayment)
}

func (b *Bot) StartPolling(ctx context.Context) {
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	b.bot.Start()
}

func (b *Bot) GetBotUsername() string {
	return b.bot.Me.Username
}

func (b *Bot) handlePreCheckout(c tele.Context) error {
	// Donations have no stock to verify; accept everything.
	return c.Accept()
}

func (b *Bot) handleSuccessfulPayment(c tele.Context) error {
	payment := c.Message().Payment
	if payment == nil {
		return nil
	}

	log.Printf("Received successful payment: %+v", payment)

	var payload service.DonationPayload
	if err := json.Unmarshal([]byte(payment.Payload), &payload); err != nil {
		log.Printf("Invalid payment payload: %s", payment.Payload)
		return nil
	}

	app, err := b.donationSvc.CreditPayment(context.Background(), payload)
	if err != nil {
		log.Printf("Failed to credit donation for app %s: %v", payload.AppID, err)
		return c.Send("Ошибка при обработке платежа. Обратитесь в поддержку.")
	}

	return c.Send(fmt.Sprintf("Спасибо за ваш донат в %d Telegram Stars для приложения %s!", payload.Stars, app.Name))
}

func (b *Bot) handleStart(c tele.Context) error {
	text := fmt.Sprintf(`Привет, %s! 👋

🌌 <b>Nebula</b> — каталог мини-приложений и игр Telegram

✅ Игры и приложения в одном месте
✅ Рейтинги и рекомендации
✅ Поддержка разработчиков через Telegram Stars

Нажми кнопку ниже, чтобы открыть каталог.`, c.Sender().FirstName)

	keyboard := &tele.ReplyMarkup{}
	if b.cfg.Telegram.WebAppURL != "" {
		keyboard.Inline(
			keyboard.Row(
				keyboard.WebApp("🌌 Открыть каталог", &tele.WebApp{URL: b.cfg.Telegram.WebAppURL}),
			),
		)
		return c.Send(text, keyboard, tele.ModeHTML)
	}

	return c.Send(text, tele.ModeHTML)
}

// CreateStarsInvoice creates a Telegram Stars invoice link. The payload
// comes back with the successful-payment event.
func (b *Bot) CreateStarsInvoice(title, description, payload string, stars int64) (string, error) {
	invoice := tele.Invoice{
		Title:       title,
		Description: description,
		Payload:     payload,
		Currency:    "XTR", // Telegram Stars
		Prices: []tele.Price{
			{Label: title, Amount: int(stars)},
		},
	}

	link, err := b.bot.CreateInvoiceLink(invoice)
	if err != nil {
		return "", fmt.Errorf("failed to create invoice: %w", err)
	}

	return link, nil
}

// NotifyAppSubmitted tells the admin chat about a new moderation item.
func (b *Bot) NotifyAppSubmitted(app *model.App) error {
	if b.cfg.Telegram.AdminChatID == 0 {
		return nil
	}

	text := fmt.Sprintf(`Новое приложение добавлено для модерации!
Разработчик: %s
Название: %s
Тип: %s
Категория: %s
ID приложения: %s`,
		app.DeveloperID, app.Name, app.Type, app.Category, app.ID)

	_, err := b.bot.Send(&tele.User{ID: b.cfg.Telegram.AdminChatID}, text)
	return err
}
