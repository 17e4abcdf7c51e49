package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"twentyone/internal/game"
)

// Callback data is read as a typed answer, so only the leading letter matters.
const (
	CallbackHit       = "hit"
	CallbackStay      = "stay"
	CallbackPlayAgain = "yes"
	CallbackStop      = "no"
)

func TurnKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData("✋ Stay", CallbackStay),
		),
	)
}

func PlayAgainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", CallbackPlayAgain),
			tgbotapi.NewInlineKeyboardButtonData("🚪 Stop", CallbackStop),
		),
	)
}

func keyboardFor(k game.QuestionKind) (tgbotapi.InlineKeyboardMarkup, bool) {
	switch k {
	case game.AskHitOrStay:
		return TurnKeyboard(), true
	case game.AskPlayAgain:
		return PlayAgainKeyboard(), true
	default:
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
}
