package platform

// SlackMessage is the Slack incoming-webhook Block Kit message structure.
type SlackMessage struct {
	Blocks []SlackBlock `json:"blocks"`
}

// SlackBlock is a single Block Kit block.
type SlackBlock struct {
	Type string     `json:"type"`
	Text *SlackText `json:"text,omitempty"`
}

// SlackText is a Block Kit text object.
type SlackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func newSlackMessage(content string) *SlackMessage {
	return &SlackMessage{
		Blocks: []SlackBlock{
			{
				Type: "section",
				Text: &SlackText{Type: "mrkdwn", Text: content},
			},
		},
	}
}
