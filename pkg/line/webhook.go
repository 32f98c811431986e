package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// SignatureHeader carries the webhook request signature
const SignatureHeader = "X-Line-Signature"

// ErrInvalidSignature indicates the webhook signature check failed
var ErrInvalidSignature = errors.New("invalid signature")

// webhook event types
const (
	EventTypeMessage  = "message"
	EventTypeFollow   = "follow"
	EventTypePostback = "postback"
)

// MessageTypeText identifies plain text event messages
const MessageTypeText = "text"

// Event is a single webhook event
type Event struct {
	Type       string        `json:"type"`
	Timestamp  int64         `json:"timestamp"`
	ReplyToken string        `json:"replyToken,omitempty"`
	Source     Source        `json:"source"`
	Message    *EventMessage `json:"message,omitempty"`
	Postback   *Postback     `json:"postback,omitempty"`
}

// Source identifies the sender of an event
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// EventMessage is the message part of a message event
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Postback is the postback part of a postback event
type Postback struct {
	Data string `json:"data"`
}

// webhookBody is the envelope LINE posts to the webhook endpoint
type webhookBody struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// ValidateSignature checks the base64 HMAC-SHA256 signature of a webhook body
func ValidateSignature(channelSecret, signature string, body []byte) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}

// ParseWebhook validates the signature and decodes the webhook events
func ParseWebhook(channelSecret, signature string, body []byte) ([]Event, error) {
	if !ValidateSignature(channelSecret, signature, body) {
		return nil, ErrInvalidSignature
	}

	var req webhookBody
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("unmarshal webhook body: %w", err)
	}
	return req.Events, nil
}
