package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/formatter"
)

// NotifySuccess sends a short run summary to the configured chat.
func (tg *TelegramImpl) NotifySuccess(export *domain.Export) {
	if tg.TgBot == nil {
		return
	}

	var text string
	if len(export.Raw) > 0 {
		text = fmt.Sprintf("✅ *LinkedIn export finished*\nsource: %s\npayload: %s bytes",
			formatter.EscapeMarkdownV2(export.Source),
			formatter.EscapeMarkdownV2(formatter.FormatNumber(len(export.Raw))))
	} else {
		text = fmt.Sprintf("✅ *LinkedIn export finished*\nsource: %s\nposts: %s\nskipped: %s",
			formatter.EscapeMarkdownV2(export.Source),
			formatter.EscapeMarkdownV2(formatter.FormatNumber(len(export.Posts))),
			formatter.EscapeMarkdownV2(formatter.FormatNumber(len(export.Skips))))
	}

	tg.send(text)
}

// NotifyFailure reports a failed run to the configured chat.
func (tg *TelegramImpl) NotifyFailure(err error) {
	if tg.TgBot == nil {
		return
	}

	tg.send(fmt.Sprintf("❌ *LinkedIn export failed*\n%s", formatter.EscapeMarkdownV2(err.Error())))
}

func (tg *TelegramImpl) send(text string) {
	msg := tgbotapi.NewMessage(tg.Config.Telegram.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending notification",
			"chat_id", tg.Config.Telegram.ChatID,
			"error", err)
		return
	}

	tg.Logger.Info("Notification sent", "chat_id", tg.Config.Telegram.ChatID)
}
