package telegram

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/lexicode/internal/codec"
	"github.com/yourusername/lexicode/internal/db"
	"github.com/yourusername/lexicode/internal/history"
	"github.com/yourusername/lexicode/internal/ws"
)

// CommandHandler handles Telegram bot commands.
type CommandHandler struct {
	codec   *codec.Codec
	history *history.Store
	hub     *ws.Hub
	bot     *Bot
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(c *codec.Codec, store *history.Store, hub *ws.Hub) *CommandHandler {
	return &CommandHandler{codec: c, history: store, hub: hub}
}

// Handle dispatches incoming messages to the correct command handler.
func (h *CommandHandler) Handle(msg *tgbotapi.Message) {
	if msg == nil || !msg.IsCommand() {
		return
	}
	ctx := context.Background()
	switch msg.Command() {
	case "encode":
		h.handleEncode(ctx, msg)
	case "decode":
		h.handleDecode(ctx, msg)
	case "status":
		h.handleStatus(ctx, msg)
	case "help", "start":
		h.handleHelp(msg)
	default:
		h.bot.reply(msg.Chat.ID, "Unknown command. Use /help for a list of commands.")
	}
}

func (h *CommandHandler) handleEncode(ctx context.Context, msg *tgbotapi.Message) {
	text := msg.CommandArguments()
	if text == "" {
		h.bot.reply(msg.Chat.ID, "Usage: /encode <text>")
		return
	}
	start := time.Now()
	out, err := h.codec.Encode(text)
	h.record(ctx, "encode", text, out, err, time.Since(start))
	if err != nil {
		h.bot.reply(msg.Chat.ID, "Encode failed: "+err.Error())
		return
	}
	h.bot.reply(msg.Chat.ID, out)
}

func (h *CommandHandler) handleDecode(ctx context.Context, msg *tgbotapi.Message) {
	text := msg.CommandArguments()
	if text == "" {
		h.bot.reply(msg.Chat.ID, "Usage: /decode <words>")
		return
	}
	start := time.Now()
	out, err := h.codec.Decode(text)
	h.record(ctx, "decode", text, out, err, time.Since(start))
	if err != nil {
		h.bot.reply(msg.Chat.ID, "Decode failed: "+err.Error())
		return
	}
	h.bot.reply(msg.Chat.ID, out)
}

func (h *CommandHandler) handleStatus(ctx context.Context, msg *tgbotapi.Message) {
	total, err := h.history.Count(ctx)
	if err != nil {
		h.bot.reply(msg.Chat.ID, "Error fetching status.")
		return
	}
	h.bot.reply(msg.Chat.ID, fmt.Sprintf(
		"Alphabet: %d words, %d bits per word\nOperations served: %d",
		h.codec.Len(), h.codec.BitWidth(), total))
}

func (h *CommandHandler) handleHelp(msg *tgbotapi.Message) {
	h.bot.reply(msg.Chat.ID, `Commands:
/encode <text> — encode text into words
/decode <words> — decode words back into text
/status — alphabet and usage summary
/help — this message`)
}

func (h *CommandHandler) record(ctx context.Context, op, input, output string, opErr error, took time.Duration) {
	entry := &db.Operation{
		Op:          op,
		Source:      "telegram",
		InputChars:  utf8.RuneCountInString(input),
		OutputChars: utf8.RuneCountInString(output),
		OK:          opErr == nil,
		DurationUS:  took.Microseconds(),
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if err := h.history.Record(ctx, entry); err != nil {
		log.Printf("telegram.record: %v", err)
	}
	h.hub.BroadcastOperation(op, "telegram", entry.InputChars, entry.OutputChars, opErr)
}
