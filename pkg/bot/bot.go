// Package bot routes inbound LINE events: admin pause commands, the pause
// gate, AI toggle commands, keyword triggers and the agent fallback for
// everything else. Routing is a flat dispatch, the only state between
// messages is the stored preference and the pause window.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vibpath/vibot/pkg/agent"
	"github.com/vibpath/vibot/pkg/line"
	"github.com/vibpath/vibot/pkg/templates"
)

//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/responder.go -pkg mocks -skip-ensure -fmt goimports . Responder

// Messenger sends replies and the typing indicator through the LINE API
type Messenger interface {
	Reply(ctx context.Context, replyToken string, messages ...line.Message) error
	ShowLoading(ctx context.Context, chatID string, seconds int) error
}

// Preferences resolves and flips the per-user AI reply switch
type Preferences interface {
	Enabled(ctx context.Context, userID string) bool
	Toggle(ctx context.Context, userID string) (bool, error)
}

// Responder produces a free-form answer for one user message
type Responder interface {
	Ask(ctx context.Context, userID, text string) (agent.Reply, error)
}

// seconds of typing indicator shown while the agent works
const loadingSeconds = 60

// Bot dispatches webhook events to replies
type Bot struct {
	messenger    Messenger
	prefs        Preferences
	responder    Responder
	pause        *Pause
	admins       Admins
	assets       *templates.Assets
	defaultPause time.Duration
}

// Config holds the routing knobs
type Config struct {
	Admins       Admins
	Assets       *templates.Assets
	DefaultPause time.Duration
}

// New creates a bot instance
func New(messenger Messenger, prefs Preferences, responder Responder, pause *Pause, cfg Config) *Bot {
	if pause == nil {
		pause = NewPause(nil)
	}
	if cfg.Assets == nil {
		cfg.Assets = templates.NewAssets("")
	}
	if cfg.DefaultPause == 0 {
		cfg.DefaultPause = time.Hour
	}

	return &Bot{
		messenger:    messenger,
		prefs:        prefs,
		responder:    responder,
		pause:        pause,
		admins:       cfg.Admins,
		assets:       cfg.Assets,
		defaultPause: cfg.DefaultPause,
	}
}

// HandleEvent routes one webhook event. Unknown event kinds and non-text
// messages are ignored.
func (b *Bot) HandleEvent(ctx context.Context, ev line.Event) error {
	switch ev.Type {
	case line.EventTypeMessage:
		if ev.Message == nil || ev.Message.Type != line.MessageTypeText {
			lgr.Printf("[DEBUG] ignoring non-text message from %s", ev.Source.UserID)
			return nil
		}
		return b.handleText(ctx, ev)
	case line.EventTypeFollow:
		return b.handleFollow(ctx, ev)
	case line.EventTypePostback:
		if ev.Postback == nil {
			return nil
		}
		return b.handlePostback(ctx, ev)
	}
	lgr.Printf("[DEBUG] ignoring event type %q", ev.Type)
	return nil
}

func (b *Bot) handleText(ctx context.Context, ev line.Event) error {
	userID := ev.Source.UserID
	text := ev.Message.Text
	lgr.Printf("[INFO] message from %s: %s", userID, snippet(text))

	if b.admins.Contains(userID) {
		if handled, err := b.handleAdminCommand(ctx, ev.ReplyToken, userID, text); handled {
			return err
		}
	}

	// pause gate applies to everyone, admin non-command messages included
	if b.pause.Active() {
		lgr.Printf("[DEBUG] bot paused, dropping message from %s", userID)
		return nil
	}

	switch normalize(text) {
	case "ai開關", "ai設定":
		return b.toggleAI(ctx, ev.ReplyToken, userID)
	case "ai狀態", "ai status":
		return b.reportAIStatus(ctx, ev.ReplyToken, userID)
	}

	if reply := b.keywordReply(text); reply != nil {
		return b.messenger.Reply(ctx, ev.ReplyToken, reply)
	}

	if !b.prefs.Enabled(ctx, userID) {
		lgr.Printf("[INFO] ai disabled and no keyword match for %s, not replying", snippet(text))
		return nil
	}
	return b.agentReply(ctx, ev.ReplyToken, userID, text)
}

func (b *Bot) handleFollow(ctx context.Context, ev line.Event) error {
	if b.pause.Active() {
		lgr.Printf("[DEBUG] bot paused, skipping welcome for %s", ev.Source.UserID)
		return nil
	}
	lgr.Printf("[INFO] new user followed: %s", ev.Source.UserID)
	return b.messenger.Reply(ctx, ev.ReplyToken, templates.WelcomeMessages()...)
}

func (b *Bot) handlePostback(ctx context.Context, ev line.Event) error {
	if b.pause.Active() {
		lgr.Printf("[DEBUG] bot paused, dropping postback from %s", ev.Source.UserID)
		return nil
	}

	data := ev.Postback.Data
	lgr.Printf("[INFO] postback from %s: %s", ev.Source.UserID, data)

	explanation, ok := templates.Explanation(data)
	if !ok {
		lgr.Printf("[WARN] unknown postback action %q from %s", data, ev.Source.UserID)
		return b.messenger.Reply(ctx, ev.ReplyToken, line.NewTextMessage(templates.UnknownExplanationText))
	}
	msg := line.NewTextMessage(explanation).WithQuickReply(templates.DetailedQuickReply())
	return b.messenger.Reply(ctx, ev.ReplyToken, msg)
}

// handleAdminCommand executes pause control commands. The handled result is
// false for non-command texts, those fall through to normal routing.
func (b *Bot) handleAdminCommand(ctx context.Context, replyToken, userID, text string) (handled bool, err error) {
	cmd := parseAdminCommand(text, b.defaultPause)

	switch cmd.kind {
	case cmdPause:
		until := b.pause.Set(cmd.duration, userID)
		reply := fmt.Sprintf("✅ Bot 已暫停\n⏰ 暫停時間: %d 分鐘\n📅 恢復時間: %s",
			int(cmd.duration.Minutes()), until.Format(timeLayout))
		return true, b.messenger.Reply(ctx, replyToken, line.NewTextMessage(reply))

	case cmdPauseInvalid:
		return true, b.messenger.Reply(ctx, replyToken, line.NewTextMessage(pauseUsageText))

	case cmdResume:
		b.pause.Clear(userID)
		return true, b.messenger.Reply(ctx, replyToken, line.NewTextMessage(resumedText))

	case cmdStatus:
		info := b.pause.Info()
		reply := statusActiveText
		if info.Paused {
			reply = fmt.Sprintf("⏸️ Bot 目前暫停中\n⏰ 剩餘時間: %d 分鐘\n📅 恢復時間: %s",
				int(info.Remaining.Minutes()), info.Until.Format(timeLayout))
		}
		return true, b.messenger.Reply(ctx, replyToken, line.NewTextMessage(reply))

	case cmdHelp:
		return true, b.messenger.Reply(ctx, replyToken, line.NewTextMessage(adminHelpText))
	}

	return false, nil
}

func (b *Bot) toggleAI(ctx context.Context, replyToken, userID string) error {
	enabled, err := b.prefs.Toggle(ctx, userID)
	if err != nil {
		lgr.Printf("[ERROR] failed to toggle ai reply for %s: %v", userID, err)
		return b.messenger.Reply(ctx, replyToken, line.NewTextMessage(templates.SystemErrorText))
	}

	text := templates.AIDisabledText
	if enabled {
		text = templates.AIEnabledText
	}
	lgr.Printf("[INFO] ai reply for %s toggled to %v", userID, enabled)
	return b.messenger.Reply(ctx, replyToken, line.NewTextMessage(text).WithQuickReply(templates.BasicQuickReply()))
}

func (b *Bot) reportAIStatus(ctx context.Context, replyToken, userID string) error {
	text := templates.AIStatusOffText
	if b.prefs.Enabled(ctx, userID) {
		text = templates.AIStatusOnText
	}
	return b.messenger.Reply(ctx, replyToken, line.NewTextMessage(text).WithQuickReply(templates.BasicQuickReply()))
}

// keywordReply builds the canned reply for keyword triggers, nil when the
// text matches none
func (b *Bot) keywordReply(text string) line.Message {
	switch detectKind(text) {
	case kindFrequency:
		return templates.ProductCarousel(b.assets).WithQuickReply(templates.ProductsQuickReply())
	case kindBusiness:
		return templates.CompanyIntro(b.assets).WithQuickReply(templates.BasicQuickReply())
	case kindMenu:
		return templates.ServiceMenu().WithQuickReply(templates.BasicQuickReply())
	case kindHelp:
		return templates.HelpMessage()
	}
	return nil
}

// agentReply asks the model and relays the answer. Failures turn into the
// apology text so an enabled user never gets dead air.
func (b *Bot) agentReply(ctx context.Context, replyToken, userID, text string) error {
	if err := b.messenger.ShowLoading(ctx, userID, loadingSeconds); err != nil {
		lgr.Printf("[WARN] failed to show loading animation for %s: %v", userID, err)
	}

	reply, err := b.responder.Ask(ctx, userID, text)
	if err != nil {
		lgr.Printf("[ERROR] agent failed for %s: %v", userID, err)
		apology := line.NewTextMessage(templates.ApologyText).WithQuickReply(templates.DetailedQuickReply())
		return b.messenger.Reply(ctx, replyToken, apology)
	}

	if reply.Flex != nil {
		return b.messenger.Reply(ctx, replyToken, reply.Flex)
	}
	msg := line.NewTextMessage(reply.Text).WithQuickReply(templates.DetailedQuickReply())
	return b.messenger.Reply(ctx, replyToken, msg)
}

// normalize lowercases and trims a command candidate
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// snippet shortens log output for long messages
func snippet(text string) string {
	const maxLen = 50
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
