package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"twentyone/internal/config"
	"twentyone/internal/console"
	"twentyone/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// API is the part of *tgbotapi.BotAPI the handler talks to.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot      API
	cfg      *config.Config
	history  game.Recorder
	sessions *Manager
	// shuffler is nil outside tests.
	shuffler game.Shuffler
	ctx      context.Context
}

func NewHandler(ctx context.Context, bot API, cfg *config.Config, history game.Recorder) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		history:  history,
		sessions: NewManager(),
		ctx:      ctx,
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🃏 Welcome to 21!\n\n"+
			"/play — start a match against the dealer\n"+
			"/quit — abandon the running match\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	r := h.cfg.Rules
	h.send(chatID, fmt.Sprintf(
		"📖 Rules of 21:\n\n"+
			"🎯 Get closer to %d than the dealer without going over.\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11, or 1 if 11 would bust you\n\n"+
			"🤖 The dealer stands on %d.\n"+
			"🏆 First to %d round wins takes the match, worth $%d per round of difference.",
		r.BustLimit, r.DealerStandsOn, r.GrandScore, r.CashPerPoint))
}

// HandlePlay starts a match for the chat unless one is already running.
func (h *Handler) HandlePlay(chatID int64) *Session {
	s := newSession(h.ctx, chatID)
	if !h.sessions.Add(s) {
		s.Stop()
		h.send(chatID, "❌ A match is already running. /quit to abandon it.")
		return nil
	}

	m, err := game.NewMatch(game.MatchConfig{
		Rules:     h.cfg.Rules,
		Prompter:  &chatPrompter{h: h, session: s},
		Announcer: &chatAnnouncer{h: h, chatID: chatID},
		Shuffler:  h.shuffler,
		Recorder:  h.history,
	})
	if err != nil {
		log.Printf("Failed to create match: %v", err)
		h.sessions.Delete(s)
		s.Stop()
		h.send(chatID, "❌ Error. Try again later.")
		return nil
	}

	go h.run(s, m)
	return s
}

func (h *Handler) run(s *Session, m *game.Match) {
	defer close(s.done)
	defer h.sessions.Delete(s)
	defer s.Stop()

	_, err := m.Play(s.ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		h.send(s.chatID, "🚪 Match abandoned.")
	default:
		log.Printf("Match %s in chat %d failed: %v", m.ID(), s.chatID, err)
		h.send(s.chatID, "❌ Error. The match was stopped.")
	}
}

func (h *Handler) HandleQuit(chatID int64) {
	s := h.sessions.Get(chatID)
	if s == nil {
		h.send(chatID, "No match is running. /play to start one.")
		return
	}
	s.Stop()
}

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	s := h.sessions.Get(chatID)
	if s == nil {
		h.answerCallback(callback.ID, "No match is running")
		return
	}
	if !s.Feed(callback.Data) {
		h.answerCallback(callback.ID, "Not your turn yet")
		return
	}
	h.answerCallback(callback.ID, "")
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch cmd := strings.ToLower(strings.Fields(text)[0]); cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/quit":
		h.HandleQuit(chatID)
	default:
		if s := h.sessions.Get(chatID); s != nil {
			s.Feed(text)
		}
	}
}

// chatAnnouncer posts game events into the chat.
type chatAnnouncer struct {
	h      *Handler
	chatID int64
}

func (a *chatAnnouncer) Announce(e game.Event) {
	switch e.Kind {
	case game.EventMatchStarted:
		a.h.send(a.chatID, fmt.Sprintf("🎰 Good luck, %s! First to %d wins.", e.Actor, a.h.cfg.Rules.GrandScore))
	case game.EventRoundStarted:
		a.h.send(a.chatID, fmt.Sprintf("🔔 Round %d", e.Round))
	case game.EventDealt:
		a.h.send(a.chatID, "🎴 "+console.FormatTable(e.Table))
	case game.EventDrew:
		a.h.send(a.chatID, fmt.Sprintf("🃏 %s draws the %s.\n%s", e.Actor, e.Card.Name(), console.FormatTable(e.Table)))
	case game.EventStayed:
		a.h.send(a.chatID, fmt.Sprintf("✋ %s stays.", e.Actor))
	case game.EventBusted:
		a.h.send(a.chatID, fmt.Sprintf("💥 %s busted!", e.Actor))
	case game.EventRevealed:
		a.h.send(a.chatID, "👀 "+console.FormatSeat(e.Table.Dealer))
	case game.EventRoundOver:
		a.h.send(a.chatID, console.FormatRound(*e.Result))
	case game.EventMatchOver:
		a.h.send(a.chatID, "🏁 "+console.FormatMatch(*e.Match))
	}
}
