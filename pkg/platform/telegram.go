package platform

// TelegramMessage is the Telegram bot sendMessage request body. The chat id
// travels in the URL query string, not in the body.
type TelegramMessage struct {
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func newTelegramMessage(content string) *TelegramMessage {
	return &TelegramMessage{
		Text:      content,
		ParseMode: "Markdown",
	}
}
