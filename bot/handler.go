package bot

import (
	"context"
	"strings"

	"github.com/giygas/medicamentos-bot/formatter"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Callback data of the start keyboard buttons
const (
	CallbackSearch   = "search"
	CallbackExamples = "examples"
	CallbackHelp     = "help"
)

// Messenger is the part of the Telegram API the handler uses
type Messenger interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *tgbot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
}

// Handler routes Telegram updates to commands and searches
type Handler struct {
	searcher interfaces.Searcher
}

func NewHandler(searcher interfaces.Searcher) *Handler {
	return &Handler{searcher: searcher}
}

// StartKeyboard is attached to the welcome message
func StartKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "💊 Buscar", CallbackData: CallbackSearch}},
			{{Text: "📚 Ejemplos", CallbackData: CallbackExamples}},
			{{Text: "ℹ️ Ayuda", CallbackData: CallbackHelp}},
		},
	}
}

// HandleUpdate processes a single Telegram update
func (h *Handler) HandleUpdate(ctx context.Context, m Messenger, update *models.Update) {
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(ctx, m, update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)
	command, args := ParseCommand(text)

	switch command {
	case "":
		h.search(ctx, m, chatID, text)
	case "/start":
		h.send(ctx, m, &tgbot.SendMessageParams{
			ChatID:      chatID,
			Text:        formatter.WelcomeMessage,
			ParseMode:   models.ParseModeMarkdownV1,
			ReplyMarkup: StartKeyboard(),
		})
	case "/help":
		h.reply(ctx, m, chatID, formatter.HelpMessage)
	case "/ejemplos":
		h.reply(ctx, m, chatID, formatter.ExamplesMessage)
	case "/buscar":
		if args == "" {
			h.reply(ctx, m, chatID, formatter.BuscarUsageMessage)
			return
		}
		h.search(ctx, m, chatID, args)
	default:
		logging.Debug("Ignoring unknown command", "command", command, "chat_id", chatID)
	}
}

// ParseCommand splits "/cmd@bot args" into "/cmd" and "args". Plain text yields an empty command.
func ParseCommand(text string) (string, string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	command, args, _ := strings.Cut(text, " ")
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), strings.Join(strings.Fields(args), " ")
}

func (h *Handler) search(ctx context.Context, m Messenger, chatID int64, query string) {
	cleaned, guidance, ok := h.searcher.Check(query)
	if !ok {
		h.reply(ctx, m, chatID, guidance)
		return
	}

	placeholder, err := m.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      formatter.Searching(cleaned),
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		logging.Warn("Failed to send searching message", "chat_id", chatID, "error", err)
	}

	result := h.searcher.Process(ctx, cleaned)

	if placeholder == nil {
		h.send(ctx, m, &tgbot.SendMessageParams{
			ChatID:             chatID,
			Text:               result,
			ParseMode:          models.ParseModeMarkdownV1,
			LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: tgbot.True()},
		})
		return
	}
	h.edit(ctx, m, chatID, placeholder.ID, result, true)
}

func (h *Handler) handleCallbackQuery(ctx context.Context, m Messenger, query *models.CallbackQuery) {
	if _, err := m.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{CallbackQueryID: query.ID}); err != nil {
		logging.Warn("Failed to answer callback query", "error", err)
	}

	var text string
	switch query.Data {
	case CallbackSearch:
		text = formatter.SearchPromptMessage
	case CallbackExamples:
		text = formatter.QuickExamplesMessage
	case CallbackHelp:
		text = formatter.QuickHelpMessage
	default:
		logging.Debug("Ignoring unknown callback", "data", query.Data)
		return
	}

	msg := query.Message.Message
	if msg == nil {
		logging.Debug("Callback message is no longer accessible", "data", query.Data)
		return
	}
	h.edit(ctx, m, msg.Chat.ID, msg.ID, text, false)
}

// edit replaces a message; if Telegram rejects the Markdown it retries as plain text
func (h *Handler) edit(ctx context.Context, m Messenger, chatID int64, messageID int, text string, noPreview bool) {
	params := &tgbot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	}
	if noPreview {
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: tgbot.True()}
	}

	_, err := m.EditMessageText(ctx, params)
	if err == nil {
		return
	}
	logging.Warn("Markdown edit rejected, retrying as plain text", "chat_id", chatID, "error", err)

	params.ParseMode = ""
	if _, err := m.EditMessageText(ctx, params); err != nil {
		logging.Error("Failed to edit message", "chat_id", chatID, "message_id", messageID, "error", err)
	}
}

func (h *Handler) reply(ctx context.Context, m Messenger, chatID int64, text string) {
	h.send(ctx, m, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func (h *Handler) send(ctx context.Context, m Messenger, params *tgbot.SendMessageParams) {
	if _, err := m.SendMessage(ctx, params); err != nil {
		logging.Error("Failed to send message", "chat_id", params.ChatID, "error", err)
	}
}
