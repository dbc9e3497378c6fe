package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	app "acne-bot/internal/application"
	"acne-bot/internal/container"
	"acne-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Hi! I help estimate acne severity from marked lesions.

📸 Send a face photo, mark the lesions you see and get a severity estimate with recommendations.

📋 Commands:
/check — start a new assessment
/simulate — demo analysis with a synthetic layout
/types — lesion types reference
/help — help
/cancel — cancel the current session`

	msgHelp = `ℹ️ How to use the bot:

1️⃣ Send a face photo (front view, good light)
2️⃣ Mark lesions: /mark <type> <x> <y>
   type: comedone, papule, pustule, nodule
   x, y: position from 0 to 1 relative to the whole photo (0 0 is the top-left corner)
3️⃣ /result — severity and recommendations

✏️ Editing:
/undo — remove the last mark
/remove <id> — remove a mark by id
/clear — remove all marks
/marks — show marks on the photo

🧪 /simulate [comedones papules pustules nodules] — synthetic layout and IGA-style score

⚠️ This is not a medical diagnosis.`

	msgAwaitingPhoto   = "📸 Send a face photo to start marking lesions."
	msgCancelled       = "❌ Session cancelled. Send /check to start again."
	msgSendPhoto       = "📸 Please send a face photo or use /help."
	msgUnknownCommand  = "❓ Unknown command. Use /help."
	msgPhotoAccepted   = "✅ Photo saved. Mark lesions with /mark <type> <x> <y>, then send /result."
	msgNoPhoto         = "📸 Send a face photo first."
	msgNothingToUndo   = "Nothing to remove."
	msgMarkNotFound    = "No mark with that id. Ids are shown in the /mark reply."
	msgMarkUsage       = "Usage: /mark <comedone|papule|pustule|nodule> <x> <y>, x and y from 0 to 1."
	msgSimulateUsage   = "Usage: /simulate or /simulate <comedones> <papules> <pustules> <nodules>, each from 0 to 500."
	msgRemoveUsage     = "Usage: /remove <id>"
	msgProcessing      = "⏳ Processing..."
	msgProcessingError = "⚠️ Could not process the request. Please try again."
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	assessment *app.AssessmentService
	log        logrus.FieldLogger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.WithField("account", api.Self.UserName).Info("authorized")

	return &Bot{
		api:        api,
		users:      c.UserService,
		assessment: c.AssessmentService,
		log:        log,
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
	// Сообщения каналов приходят без отправителя
	if msg.From == nil {
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	args := msg.CommandArguments()

	switch msg.Command() {
	case "start":
		if _, err := b.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
			b.fail(chatID, "start", err)
			return
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "types":
		b.sendMessage(chatID, formatTypes())

	case "check":
		if _, err := b.users.BeginCheck(ctx, userID, chatID); err != nil {
			b.fail(chatID, "check", err)
			return
		}
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		if _, err := b.users.Cancel(ctx, userID, chatID); err != nil {
			b.fail(chatID, "cancel", err)
			return
		}
		b.sendMessage(chatID, msgCancelled)

	case "mark":
		b.handleMark(ctx, msg, args)

	case "undo":
		user, removed, err := b.assessment.UndoLesion(ctx, userID, chatID)
		if b.replyError(chatID, "undo", err) {
			return
		}
		b.sendMessage(chatID, fmt.Sprintf("Removed %s.\n%s", removed.Type, formatSession(user)))

	case "remove":
		if args == "" {
			b.sendMessage(chatID, msgRemoveUsage)
			return
		}
		user, err := b.assessment.RemoveLesion(ctx, userID, chatID, args)
		if b.replyError(chatID, "remove", err) {
			return
		}
		b.sendMessage(chatID, "Removed.\n"+formatSession(user))

	case "clear":
		user, err := b.assessment.ClearLesions(ctx, userID, chatID)
		if b.replyError(chatID, "clear", err) {
			return
		}
		b.sendMessage(chatID, formatSession(user))

	case "marks":
		img, err := b.assessment.RenderMarks(ctx, userID, chatID)
		if b.replyError(chatID, "marks", err) {
			return
		}
		b.sendPhoto(chatID, img, "Your marks")

	case "result":
		result, err := b.assessment.Assess(ctx, userID, chatID)
		if b.replyError(chatID, "result", err) {
			return
		}
		b.sendMessage(chatID, formatAssessment(result))

	case "simulate":
		b.handleSimulate(ctx, msg, args)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

func (b *Bot) handleMark(ctx context.Context, msg *tgbotapi.Message, args string) {
	chatID := msg.Chat.ID
	req, err := parseMark(args)
	if err != nil {
		b.sendMessage(chatID, msgMarkUsage)
		return
	}

	user, lesion, err := b.assessment.MarkLesion(ctx, msg.From.ID, chatID, req)
	if errors.Is(err, app.ErrInvalidRequest) {
		b.sendMessage(chatID, msgMarkUsage)
		return
	}
	if b.replyError(chatID, "mark", err) {
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("Marked %s at (%.2f, %.2f), id %s\n%s",
		lesion.Type, lesion.Position.X, lesion.Position.Y, lesion.ID, formatSession(user)))
}

func (b *Bot) handleSimulate(ctx context.Context, msg *tgbotapi.Message, args string) {
	chatID := msg.Chat.ID
	req, err := parseCounts(args)
	if err != nil {
		b.sendMessage(chatID, msgSimulateUsage)
		return
	}

	b.sendMessage(chatID, msgProcessing)
	out, err := b.assessment.SimulateForUser(ctx, msg.From.ID, chatID, req)
	if errors.Is(err, app.ErrInvalidRequest) {
		b.sendMessage(chatID, msgSimulateUsage)
		return
	}
	if err != nil {
		b.fail(chatID, "simulate", err)
		return
	}

	if len(out.Highlighted) > 0 {
		b.sendPhoto(chatID, out.Highlighted, fmt.Sprintf("Synthetic layout: %d lesions", out.Result.Counts.Total))
	}
	b.sendMessage(chatID, formatSimulation(out.Result))
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.fail(msg.Chat.ID, "download photo", err)
		return
	}

	if _, err := b.assessment.AcceptPhoto(ctx, msg.From.ID, msg.Chat.ID, imageData); err != nil {
		b.fail(msg.Chat.ID, "accept photo", err)
		return
	}

	b.log.WithFields(logrus.Fields{"user": msg.From.ID, "bytes": len(imageData)}).Debug("photo accepted")
	b.sendMessage(msg.Chat.ID, msgPhotoAccepted)
}

// replyError отвечает пользователю на ожидаемые ошибки сессии; true — ошибка была
func (b *Bot) replyError(chatID int64, op string, err error) bool {
	if err == nil {
		return false
	}
	if text, ok := sessionErrorText(op, err); ok {
		b.sendMessage(chatID, text)
		return true
	}
	b.fail(chatID, op, err)
	return true
}

func (b *Bot) fail(chatID int64, op string, err error) {
	b.log.WithError(err).WithField("op", op).Error("request failed")
	b.sendMessage(chatID, msgProcessingError)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

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
		b.log.WithError(err).Error("send message")
	}
}

// sendPhoto отправляет JPEG с подписью
func (b *Bot) sendPhoto(chatID int64, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "lesions.jpg", Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		b.log.WithError(err).Error("send photo")
	}
}
