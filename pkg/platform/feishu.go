package platform

// FeishuMessage is the Feishu custom-bot interactive-card webhook structure.
type FeishuMessage struct {
	MsgType string     `json:"msg_type"`
	Card    FeishuCard `json:"card"`
}

// FeishuCard is an interactive card with a colored header and body elements.
type FeishuCard struct {
	Header   FeishuCardHeader    `json:"header"`
	Elements []FeishuCardElement `json:"elements"`
}

// FeishuCardHeader is the card header with title text and template color.
type FeishuCardHeader struct {
	Title    FeishuCardTitle `json:"title"`
	Template string          `json:"template"`
}

// FeishuCardTitle is the plain-text title of a card header.
type FeishuCardTitle struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

// FeishuCardElement is a single markdown element inside a card.
type FeishuCardElement struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

func newFeishuMessage(title, color, content string) *FeishuMessage {
	if title == "" {
		title = "Notification"
	}
	if color == "" {
		color = "blue"
	}
	return &FeishuMessage{
		MsgType: "interactive",
		Card: FeishuCard{
			Header: FeishuCardHeader{
				Title:    FeishuCardTitle{Tag: "plain_text", Content: title},
				Template: color,
			},
			Elements: []FeishuCardElement{
				{Tag: "markdown", Content: content},
			},
		},
	}
}
