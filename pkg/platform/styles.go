package platform

// StatusKind names a phase of a tracked task.
type StatusKind string

const (
	// StatusStarted marks a task that just began.
	StatusStarted StatusKind = "started"
	// StatusInProgress marks a task that is still running.
	StatusInProgress StatusKind = "in_progress"
	// StatusCompleted marks a task that finished successfully.
	StatusCompleted StatusKind = "completed"
	// StatusFailed marks a task that finished with an error.
	StatusFailed StatusKind = "failed"
	// StatusCancelled marks a task that was aborted.
	StatusCancelled StatusKind = "cancelled"
)

// StatusKinds returns every known status kind in declaration order.
func StatusKinds() []StatusKind {
	return []StatusKind{StatusStarted, StatusInProgress, StatusCompleted, StatusFailed, StatusCancelled}
}

// Style carries the per-status presentation attributes.
type Style struct {
	// Color is a card template color name (used by the Feishu header).
	Color string `json:"color"`
	// Emoji is the glyph prefixed to the task name.
	Emoji string `json:"emoji"`
	// Accent is the WeCom markdown font color tag for the status text.
	Accent string `json:"accent"`
}

// StyleFor returns the style for the given status kind. An unknown kind gets
// the in_progress style; the literal status text is still rendered by the
// progress templates.
func StyleFor(kind StatusKind) Style {
	switch kind {
	case StatusStarted:
		return Style{Color: "blue", Emoji: "🚀", Accent: "comment"}
	case StatusCompleted:
		return Style{Color: "green", Emoji: "✅", Accent: "info"}
	case StatusFailed:
		return Style{Color: "red", Emoji: "❌", Accent: "warning"}
	case StatusCancelled:
		return Style{Color: "grey", Emoji: "🚫", Accent: "comment"}
	case StatusInProgress:
		return Style{Color: "yellow", Emoji: "⏳", Accent: "comment"}
	default:
		return StyleFor(StatusInProgress)
	}
}
