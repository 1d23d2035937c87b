// Package platform defines the closed set of webhook platforms statuspush
// can deliver to, together with their credential requirements, webhook URL
// construction rules, payload schemas and status styling.
//
// The set is a compile-time enumeration dispatched by exhaustive switches.
// Adding a platform means adding a constant plus one case to every switch in
// this package; the registry test fails on any entry left behind.
package platform

import (
	"fmt"
	"net/url"
)

// Platform identifies a webhook target platform.
type Platform string

const (
	// WeCom is WeChat Work group-robot webhooks.
	WeCom Platform = "wecom"
	// DingTalk is DingTalk custom-robot webhooks.
	DingTalk Platform = "dingtalk"
	// Feishu is Feishu (Lark) custom-bot webhooks.
	Feishu Platform = "feishu"
	// Slack is Slack incoming webhooks.
	Slack Platform = "slack"
	// Telegram is the Telegram bot sendMessage API.
	Telegram Platform = "telegram"
)

// Default is the platform used when the caller does not choose one.
const Default = WeCom

// Webhook API bases. Slack has none: its credential is the full URL.
const (
	wecomBaseURL    = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send"
	dingtalkBaseURL = "https://oapi.dingtalk.com/robot/send"
	feishuBaseURL   = "https://open.feishu.cn/open-apis/bot/v2/hook"
	telegramBaseURL = "https://api.telegram.org"
)

// All returns every known platform in registry enumeration order.
func All() []Platform {
	return []Platform{WeCom, DingTalk, Feishu, Slack, Telegram}
}

// Names returns the string identifiers of every known platform.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return names
}

// Valid reports whether p is a known platform.
func Valid(p Platform) bool {
	switch p {
	case WeCom, DingTalk, Feishu, Slack, Telegram:
		return true
	}
	return false
}

// Parse converts a string identifier into a Platform, failing with an
// UNKNOWN_PLATFORM error that enumerates the valid identifiers.
func Parse(s string) (Platform, error) {
	p := Platform(s)
	if !Valid(p) {
		return "", errUnknownPlatform(s)
	}
	return p, nil
}

// CredentialVar returns the environment variable holding the platform's
// primary credential.
func (p Platform) CredentialVar() string {
	switch p {
	case WeCom:
		return "WEBHOOK_WECOM_KEY"
	case DingTalk:
		return "WEBHOOK_DINGTALK_TOKEN"
	case Feishu:
		return "WEBHOOK_FEISHU_TOKEN"
	case Slack:
		return "WEBHOOK_SLACK_URL"
	case Telegram:
		return "WEBHOOK_TELEGRAM_TOKEN"
	}
	return ""
}

// ExtraVar returns the environment variable holding the platform's extra
// credential, or "" when the platform needs none. Only Telegram declares one,
// for the destination chat id.
func (p Platform) ExtraVar() string {
	if p == Telegram {
		return "WEBHOOK_TELEGRAM_CHAT_ID"
	}
	return ""
}

// WebhookURL builds the delivery URL from the resolved credentials.
// The function is pure: same credentials, same URL.
func (p Platform) WebhookURL(credential, extra string) string {
	switch p {
	case WeCom:
		return fmt.Sprintf("%s?key=%s", wecomBaseURL, url.QueryEscape(credential))
	case DingTalk:
		return fmt.Sprintf("%s?access_token=%s", dingtalkBaseURL, url.QueryEscape(credential))
	case Feishu:
		return fmt.Sprintf("%s/%s", feishuBaseURL, url.PathEscape(credential))
	case Slack:
		// The stored value is the complete incoming-webhook URL.
		return credential
	case Telegram:
		return fmt.Sprintf("%s/bot%s/sendMessage?chat_id=%s",
			telegramBaseURL, url.PathEscape(credential), url.QueryEscape(extra))
	}
	return ""
}
