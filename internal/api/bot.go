package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"rescue-planner/internal/container"
	"rescue-planner/internal/domain/entity"
	"rescue-planner/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я бот планирования эвакуации по снимкам с БПЛА.

📸 Отправьте снимок, и я найду пострадавших и площадки, назначу площадки и посчитаю коэффициент спасения.

📋 Команды:
/survey — начать анализ снимка
/report — рейтинг последнего пакета
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /survey
2️⃣ Пришлите снимок местности с маркерами
3️⃣ Получите число пострадавших, назначения и коэффициент спасения

🔺 Пострадавшие: звезда, треугольник, квадрат (красный, жёлтый, зелёный)
🔵 Площадки: круги (синий — 4 места, розовый — 3, серый — 2)

📋 Команды:
/survey — начать анализ
/report — рейтинг последнего пакета
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте снимок для анализа."
	msgCancelled       = "❌ Операция отменена. Отправьте /survey для нового анализа."
	msgSendPhoto       = "📸 Пожалуйста, отправьте /survey и затем снимок."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю снимок..."
	msgNoReport        = "📭 Пакетных отчётов пока нет."
	msgProcessingError = "⚠️ Не удалось обработать снимок. Попробуйте другой файл."
)

// Bot представляет Telegram-бота
// stateTransition переход диалога, выполняемый UserService
type stateTransition func(ctx context.Context, userID, chatID int64) (*entity.User, error)

type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
	log zerolog.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log = log.With().Str("component", "bot").Logger()
	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api: api,
		app: app,
		log: log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// У постов каналов нет отправителя
	if msg.From == nil || msg.Chat == nil {
		return
	}

	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Error().Err(err).Int64("user", msg.From.ID).Msg("get user")
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото и снимков, присланных файлом
	if len(msg.Photo) > 0 || isImageDocument(msg.Document) {
		if user.State != entity.StateAwaitingPhoto {
			b.sendMessage(msg.Chat.ID, msgSendPhoto)
			return
		}
		b.handlePhoto(ctx, msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.transition(ctx, user, b.app.UserService.Cancel)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "survey":
		b.transition(ctx, user, b.app.UserService.BeginSurvey)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "report":
		report, err := b.app.SurveyService.LatestReport(ctx)
		if errors.Is(err, port.ErrReportNotFound) {
			b.sendMessage(msg.Chat.ID, msgNoReport)
			return
		}
		if err != nil {
			b.log.Error().Err(err).Msg("load report")
			b.sendMessage(msg.Chat.ID, msgProcessingError)
			return
		}
		b.sendMessage(msg.Chat.ID, formatReport(report))

	case "cancel":
		b.transition(ctx, user, b.app.UserService.Cancel)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto анализирует присланный снимок
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	b.transition(ctx, user, b.app.UserService.StartProcessing)
	defer b.transition(ctx, user, b.app.UserService.Cancel)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	fileID, name := photoFile(msg)
	imageData, err := b.downloadFile(fileID)
	if err != nil {
		b.log.Error().Err(err).Msg("download photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	out, err := b.app.SurveyService.AnalyzeImage(ctx, name, imageData)
	if err != nil {
		b.log.Error().Err(err).Str("image", name).Msg("analyze photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.sendMessage(msg.Chat.ID, formatResult(out.Result))
	if out.Rendered != nil {
		b.sendPhoto(msg.Chat.ID, "assigned.jpg", out.Rendered.Assigned)
	}
}

// photoFile выбирает файл с максимальным разрешением или документ
func photoFile(msg *tgbotapi.Message) (fileID, name string) {
	if msg.Document != nil {
		return msg.Document.FileID, msg.Document.FileName
	}
	photo := msg.Photo[len(msg.Photo)-1]
	return photo.FileID, photo.FileUniqueID + ".jpg"
}

func isImageDocument(doc *tgbotapi.Document) bool {
	return doc != nil && strings.HasPrefix(doc.MimeType, "image/")
}

// formatResult текст ответа по одному снимку
func formatResult(r *entity.ImageResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🧭 Снимок: %s\n", r.ImageID)
	fmt.Fprintf(&sb, "🆘 Пострадавших: %d, назначено: %d\n", len(r.Casualties), r.AssignedCount())
	fmt.Fprintf(&sb, "🛬 Площадок: %d\n", len(r.Pads))
	for i, p := range r.Pads {
		fmt.Fprintf(&sb, "  #%d %s (%d,%d): %d/%d\n", i+1, p.Color, p.Position.X, p.Position.Y, p.AssignedCount, p.Capacity)
	}
	fmt.Fprintf(&sb, "📈 Коэффициент спасения: %.3f", r.RescueRatio)
	return sb.String()
}

// formatReport текст рейтинга пакета
func formatReport(report *entity.BatchReport) string {
	if len(report.Entries) == 0 {
		return msgNoReport
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 Рейтинг снимков (%s):\n", report.CreatedAt.Format("2006-01-02 15:04"))
	for i, e := range report.Entries {
		fmt.Fprintf(&sb, "%d. %s: %.3f\n", i+1, e.ImageID, e.Ratio)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// transition сохраняет новое состояние и обновляет локальную копию
func (b *Bot) transition(ctx context.Context, user *entity.User, step stateTransition) {
	updated, err := step(ctx, user.ID, user.ChatID)
	if err != nil {
		b.log.Error().Err(err).Int64("user", user.ID).Msg("save user state")
		return
	}
	user.SetState(updated.State)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Msg("send message")
	}
}

// sendPhoto отправляет размеченный снимок
func (b *Bot) sendPhoto(chatID int64, name string, data []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error().Err(err).Msg("send photo")
	}
}
