package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/vibpath/vibot/pkg/config"
)

// errCritical marks request failures that must not be retried
var errCritical = errors.New("critical")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string { return e.err.Error() }

func (e *criticalError) Unwrap() error { return e.err }

func (e *criticalError) Is(target error) bool { return target == errCritical }

// Client calls the LINE Messaging API
type Client struct {
	token    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Messaging API client
func NewClient(cfg config.LineConfig) *Client {
	return &Client{
		token:    cfg.ChannelToken,
		endpoint: strings.TrimSuffix(cfg.APIEndpoint, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

type loadingRequest struct {
	ChatID         string `json:"chatId"`
	LoadingSeconds int    `json:"loadingSeconds"`
}

// Reply answers a webhook event, the reply token is single-use
func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	if len(messages) == 0 || len(messages) > 5 {
		return fmt.Errorf("reply takes 1 to 5 messages, got %d", len(messages))
	}
	if err := c.post(ctx, "/v2/bot/message/reply", replyRequest{ReplyToken: replyToken, Messages: messages}); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

// Push sends messages to a user outside the reply window
func (c *Client) Push(ctx context.Context, to string, messages ...Message) error {
	if len(messages) == 0 || len(messages) > 5 {
		return fmt.Errorf("push takes 1 to 5 messages, got %d", len(messages))
	}
	if err := c.post(ctx, "/v2/bot/message/push", pushRequest{To: to, Messages: messages}); err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	return nil
}

// ShowLoading displays a typing indicator in a one-on-one chat.
// Seconds are clamped to the 5..60 range the API accepts.
func (c *Client) ShowLoading(ctx context.Context, chatID string, seconds int) error {
	if seconds < 5 {
		seconds = 5
	}
	if seconds > 60 {
		seconds = 60
	}
	if err := c.post(ctx, "/v2/bot/chat/loading/start", loadingRequest{ChatID: chatID, LoadingSeconds: seconds}); err != nil {
		return fmt.Errorf("show loading: %w", err)
	}
	return nil
}

// post sends a JSON payload, retrying transient failures with backoff.
// 4xx responses other than 429 are permanent and stop the retry loop.
func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
		if reqErr != nil {
			return &criticalError{err: fmt.Errorf("create request: %w", reqErr)}
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, respErr := c.client.Do(req)
		if respErr != nil {
			return fmt.Errorf("post %s: %w", path, respErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			return nil
		}

		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		statusErr := fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, strings.TrimSpace(string(detail)))
		if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError &&
			resp.StatusCode != http.StatusTooManyRequests {
			return &criticalError{err: statusErr}
		}
		return statusErr
	}, errCritical)
}
