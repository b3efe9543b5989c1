package telegram

import (
	"context"
	"errors"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "thermo-agent/internal/application"
	"thermo-agent/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот термографического анализа нагрузки на ноги.

📋 Команды:
/sessions — список сессий съёмки
/analyze <id> — отчёт по сессии
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Посмотрите доступные сессии: /sessions
2️⃣ Запустите анализ: /analyze 001 (или /analyze и затем номер сессии)
3️⃣ Получите отчёт по каждому ракурсу: асимметрия, уровень риска, рекомендации`

	msgAwaitingSession = "🗂 Отправьте идентификатор сессии для анализа."
	msgCancelled       = "❌ Операция отменена. Отправьте /analyze для нового анализа."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgUnknownText     = "📋 Используйте /analyze <id> для анализа сессии."
	msgProcessing      = "⏳ Анализирую сессию..."
	msgNoSessions      = "📭 Сессий пока нет."
	msgNoViews         = "📭 В сессии нет снимков до тренировки."
	msgSessionNotFound = "⚠️ Сессия не найдена. Список: /sessions"
	msgProcessingError = "⚠️ Не удалось проанализировать сессию."
)

// Analyzer интерфейс анализа сессий для бота
type Analyzer interface {
	ListSessions(ctx context.Context) ([]string, error)
	AnalyzeSession(ctx context.Context, sessionID string) (*entity.SessionReport, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	users    *app.UserService
	analyzer Analyzer
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, analyzer Analyzer) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		users:    users,
		analyzer: analyzer,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			// Посты каналов приходят без отправителя
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Ждём идентификатор сессии после /analyze без аргумента
	if user.State == entity.StateAwaitingSession {
		b.analyze(ctx, msg, strings.TrimSpace(msg.Text))
		return
	}

	b.sendMessage(msg.Chat.ID, msgUnknownText)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.resetUser(ctx, msg)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "sessions":
		b.listSessions(ctx, msg.Chat.ID)

	case "analyze":
		if sessionID := strings.TrimSpace(msg.CommandArguments()); sessionID != "" {
			b.analyze(ctx, msg, sessionID)
			return
		}
		if _, err := b.users.BeginAnalyze(ctx, msg.From.ID, msg.Chat.ID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingSession)

	case "cancel":
		b.resetUser(ctx, msg)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

func (b *Bot) listSessions(ctx context.Context, chatID int64) {
	sessions, err := b.analyzer.ListSessions(ctx)
	if err != nil {
		log.Printf("Error listing sessions: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}
	if len(sessions) == 0 {
		b.sendMessage(chatID, msgNoSessions)
		return
	}
	b.sendMessage(chatID, "🗂 Сессии:\n"+strings.Join(sessions, "\n"))
}

// analyze запускает анализ и отправляет по сообщению на каждый ракурс
func (b *Bot) analyze(ctx context.Context, msg *tgbotapi.Message, sessionID string) {
	if _, err := b.users.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateProcessing); err != nil {
		log.Printf("Error saving user: %v", err)
	}
	b.sendMessage(msg.Chat.ID, msgProcessing)

	report, err := b.analyzer.AnalyzeSession(ctx, sessionID)
	if err != nil {
		b.resetUser(ctx, msg)
		if errors.Is(err, entity.ErrSessionNotFound) {
			b.sendMessage(msg.Chat.ID, msgSessionNotFound)
			return
		}
		log.Printf("Error analyzing session %s: %v", sessionID, err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	messages := FormatReport(report)
	if len(messages) == 0 {
		b.sendMessage(msg.Chat.ID, msgNoViews)
	}
	for _, text := range messages {
		b.sendMessage(msg.Chat.ID, text)
	}

	if _, err := b.users.CompleteAnalyze(ctx, msg.From.ID, msg.Chat.ID, sessionID); err != nil {
		log.Printf("Error saving user: %v", err)
	}
}

func (b *Bot) resetUser(ctx context.Context, msg *tgbotapi.Message) {
	if _, err := b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID); err != nil {
		log.Printf("Error saving user: %v", err)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
