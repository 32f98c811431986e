package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/vibpath/vibot/pkg/config"
	"github.com/vibpath/vibot/pkg/line"
	"github.com/vibpath/vibot/pkg/templates"
)

// Agent answers free-form customer questions with an OpenAI-compatible model
type Agent struct {
	client    *openai.Client
	config    config.AgentConfig
	systemMsg string
	assets    *templates.Assets
	sessions  *sessionStore
}

// Reply is one answer produced for a user query. Text and Flex are mutually
// exclusive, flex replies come from tool calls.
type Reply struct {
	Text string
	Flex *line.FlexMessage
}

// NewAgent creates an agent for the given configuration
func NewAgent(cfg config.AgentConfig, assets *templates.Assets) *Agent {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Agent{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
		assets:    assets,
		sessions:  newSessionStore(cfg.MaxHistory, cfg.SessionTTL),
	}
}

// Ask sends the user's question to the model and returns the reply. A tool
// call requested by the model is executed locally and short-circuits the
// conversation, its structured result goes straight back to the user. Rate
// limit rejections turn into a fixed busy answer instead of an error.
func (a *Agent) Ask(ctx context.Context, userID, text string) (Reply, error) {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	history := a.sessions.history(userID)
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: a.systemMsg,
	})
	messages = append(messages, history...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages:    messages,
		Tools:       agentTools,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if isRateLimited(err) {
			lgr.Printf("[WARN] llm rate limited for user %s: %v", userID, err)
			return Reply{Text: templates.AgentBusyText}, nil
		}
		return Reply{}, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("no response from llm")
	}

	msg := resp.Choices[0].Message

	// the model asked for a tool, run it and short-circuit with the result
	for _, call := range msg.ToolCalls {
		reply, ok := a.runTool(call)
		if !ok {
			continue
		}
		a.sessions.append(userID, text, reply.recorded())
		return reply, nil
	}

	if strings.TrimSpace(msg.Content) == "" {
		return Reply{}, fmt.Errorf("empty response from llm")
	}

	a.sessions.append(userID, text, msg.Content)
	return Reply{Text: replyPrefix + msg.Content}, nil
}

// recorded is what goes into the session history as the assistant turn
func (r Reply) recorded() string {
	if r.Flex != nil {
		return r.Flex.AltText
	}
	return r.Text
}

// isRateLimited reports whether the error looks like a quota or rate limit
// rejection from the model provider
func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "rate limit", "quota", "resource exhausted"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
