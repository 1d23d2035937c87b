package platform

// DingTalkMessage is the DingTalk custom-robot webhook message structure.
type DingTalkMessage struct {
	MsgType  string           `json:"msgtype"`
	Markdown DingTalkMarkdown `json:"markdown"`
}

// DingTalkMarkdown carries the title and markdown body of a DingTalk message.
type DingTalkMarkdown struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func newDingTalkMessage(title, content string) *DingTalkMessage {
	if title == "" {
		title = "Notification"
	}
	return &DingTalkMessage{
		MsgType:  "markdown",
		Markdown: DingTalkMarkdown{Title: title, Text: content},
	}
}
