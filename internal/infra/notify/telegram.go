package notify

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers operational alerts to the warehouse admins.
type Notifier interface {
	Alert(text string)
}

// Noop satisfies Notifier when alerting is disabled in config.
type Noop struct{}

func (Noop) Alert(string) {}

type Telegram struct {
	api       *tgbotapi.BotAPI
	adminChat int64
	log       *slog.Logger
}

func NewTelegram(token string, adminChat int64, log *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, adminChat: adminChat, log: log}, nil
}

// Alert is best-effort: a failed delivery is logged, never propagated.
func (t *Telegram) Alert(text string) {
	msg := tgbotapi.NewMessage(t.adminChat, text)
	if _, err := t.api.Send(msg); err != nil {
		t.log.Error("telegram alert failed", "err", err)
	}
}
