package telegram

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/medeiros-dev/reseller-vault/configs"
	"github.com/medeiros-dev/reseller-vault/internal/app/registry"
	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/messenger"
	"github.com/medeiros-dev/reseller-vault/pkg/logger"
)

const MessengerName = "telegram"

// TelegramMessenger implements messenger.Messenger over the Telegram Bot API.
// Credentials arrive per call (the bot token lives in the notifier config
// document, not in process config), so bot clients are created lazily and
// cached per token.
type TelegramMessenger struct {
	apiEndpoint string

	mu   sync.Mutex
	bots map[string]*tgbotapi.BotAPI
}

// Factory function for creating TelegramMessenger instances.
func NewTelegramMessengerFactory(cfg *configs.Config) (messenger.Messenger, error) {
	endpoint := cfg.TelegramAPIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	logger.L().Info("Initializing Telegram messenger",
		zap.String("apiEndpoint", endpoint),
	)
	return &TelegramMessenger{
		apiEndpoint: endpoint,
		bots:        make(map[string]*tgbotapi.BotAPI),
	}, nil
}

// init registers the Telegram messenger factory.
func init() {
	if err := registry.RegisterMessengerFactory(MessengerName, NewTelegramMessengerFactory); err != nil {
		// Panic during initialization if registration fails, as it's a programming error.
		panic(fmt.Sprintf("Failed to register messenger factory '%s': %v", MessengerName, err))
	}
	logger.L().Info("Messenger factory registered", zap.String("messengerName", MessengerName))
}

// Send delivers text as an HTML-formatted Telegram message.
func (m *TelegramMessenger) Send(ctx context.Context, creds messenger.Credentials, text string) error {
	if creds.BotToken == "" || creds.ChatID == "" {
		return fmt.Errorf("telegram credentials missing: %w", domain.ErrNotConfigured)
	}

	bot, err := m.bot(creds.BotToken)
	if err != nil {
		return domain.NewDeliveryError("creating telegram bot client", err)
	}

	msg := tgbotapi.NewMessageToChannel(creds.ChatID, text)
	if chatID, convErr := strconv.ParseInt(creds.ChatID, 10, 64); convErr == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := bot.Send(msg); err != nil {
		logger.L().Error("Error sending Telegram message",
			zap.String("chatID", creds.ChatID),
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		return domain.NewDeliveryError(fmt.Sprintf("sending telegram message to chat %s", creds.ChatID), err)
	}
	logger.L().Info("Telegram message sent",
		zap.String("chatID", creds.ChatID),
		zap.String("traceID", logger.TraceIDFromContext(ctx)),
	)
	return nil
}

func (m *TelegramMessenger) bot(token string) (*tgbotapi.BotAPI, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if bot, ok := m.bots[token]; ok {
		return bot, nil
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, m.apiEndpoint)
	if err != nil {
		return nil, err
	}
	m.bots[token] = bot
	return bot, nil
}
