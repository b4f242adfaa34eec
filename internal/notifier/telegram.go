package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/0x0BSoD/hnPush/internal/model"
)

// TelegramSender delivers notifications as plain-text messages to a chat.
// The story URL is already part of the body, so Telegram's own link preview
// serves as the click target.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSender(bot *tgbotapi.BotAPI, chatID int64) *TelegramSender {
	return &TelegramSender{bot: bot, chatID: chatID}
}

func (s *TelegramSender) Send(ctx context.Context, n model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(s.chatID, n.Title+"\n\n"+n.Body)

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
