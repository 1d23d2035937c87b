package platform

// PayloadOptions carries the caller-tunable fields that influence
// platform-specific payload construction.
type PayloadOptions struct {
	// Title is used by platforms with a separate title field (DingTalk) or a
	// card header (Feishu).
	Title string
	// Color overrides the Feishu card header template color.
	Color string
}

// BuildPayload constructs the wire-format message object for the given
// platform. Payloads are built fresh per call and never shared between
// platforms. The returned object serializes to the platform's webhook JSON
// schema.
func BuildPayload(p Platform, content string, opts PayloadOptions) (any, error) {
	switch p {
	case WeCom:
		return newWeComMessage(content), nil
	case DingTalk:
		return newDingTalkMessage(opts.Title, content), nil
	case Feishu:
		return newFeishuMessage(opts.Title, opts.Color, content), nil
	case Slack:
		return newSlackMessage(content), nil
	case Telegram:
		return newTelegramMessage(content), nil
	}
	return nil, errUnknownPlatform(string(p))
}
