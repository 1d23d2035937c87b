package platform

// WeComMessage is the WeChat Work group-robot webhook message structure.
type WeComMessage struct {
	MsgType  string        `json:"msgtype"`
	Markdown WeComMarkdown `json:"markdown"`
}

// WeComMarkdown carries the markdown body of a WeCom message.
type WeComMarkdown struct {
	Content string `json:"content"`
}

func newWeComMessage(content string) *WeComMessage {
	return &WeComMessage{
		MsgType:  "markdown",
		Markdown: WeComMarkdown{Content: content},
	}
}
