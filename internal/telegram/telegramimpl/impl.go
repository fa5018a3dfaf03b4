package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/linkedin-posts-exporter/internal/telegram"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New builds the notifier. Without a bot token it stays disabled and every
// notification is a no-op.
func New(opts Opts) (*TelegramImpl, error) {
	impl := &TelegramImpl{
		Logger: opts.Logger.WithComponent("Telegram"),
		Config: opts.Config,
	}

	if opts.Config.Telegram.Token == "" {
		impl.Logger.Info("Telegram token not configured, notifications disabled")
		return impl, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "error", err)
		return nil, err
	}

	impl.TgBot = tgBot
	return impl, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)
