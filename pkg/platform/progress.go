package platform

import (
	"fmt"
	"strings"
	"time"
)

// FormatProgress renders the progress/status content for one platform. The
// five templates differ only in markup syntax; all of them embed the task
// name, the upper-cased status text, the optional details block and a
// trailing UTC timestamp captured at format time. That information parity is
// a contract: a reader on any platform sees the same facts.
//
// A blank details string omits the details block entirely, never an empty
// line or a stray block quote. The status text is rendered literally even
// when the kind is unknown; only the style falls back.
func FormatProgress(p Platform, task string, status StatusKind, details string, style Style) string {
	upper := strings.ToUpper(string(status))
	detail := strings.TrimSpace(details)
	now := time.Now().UTC().Format(time.RFC3339)

	var lines []string
	switch p {
	case WeCom:
		lines = append(lines, fmt.Sprintf("## %s %s", style.Emoji, task))
		lines = append(lines, fmt.Sprintf("**Status**: <font color=\"%s\">%s</font>", style.Accent, upper))
		if detail != "" {
			lines = append(lines, fmt.Sprintf("> %s", detail))
		}
		lines = append(lines, fmt.Sprintf("`%s`", now))
	case DingTalk:
		lines = append(lines, fmt.Sprintf("### %s %s", style.Emoji, task))
		lines = append(lines, fmt.Sprintf("**Status**: **%s**", upper))
		if detail != "" {
			lines = append(lines, fmt.Sprintf("> %s", detail))
		}
		lines = append(lines, fmt.Sprintf("*%s*", now))
	case Feishu:
		lines = append(lines, fmt.Sprintf("**%s %s**", style.Emoji, task))
		lines = append(lines, fmt.Sprintf("**Status**: %s", upper))
		if detail != "" {
			lines = append(lines, detail)
		}
		lines = append(lines, fmt.Sprintf("*%s*", now))
	case Slack:
		lines = append(lines, fmt.Sprintf("*%s %s*", style.Emoji, task))
		lines = append(lines, fmt.Sprintf("*Status:* %s", upper))
		if detail != "" {
			lines = append(lines, fmt.Sprintf("> %s", detail))
		}
		lines = append(lines, fmt.Sprintf("_%s_", now))
	case Telegram:
		lines = append(lines, fmt.Sprintf("*%s %s*", style.Emoji, task))
		lines = append(lines, fmt.Sprintf("Status: *%s*", upper))
		if detail != "" {
			lines = append(lines, detail)
		}
		lines = append(lines, fmt.Sprintf("_%s_", now))
	default:
		// Unknown platforms are rejected earlier by Parse/Resolve; render the
		// Feishu-style plain template so the function stays total.
		return FormatProgress(Feishu, task, status, details, style)
	}

	return strings.Join(lines, "\n")
}
