// Package line implements the subset of the LINE Messaging API the bot
// uses: webhook parsing with signature validation, reply/push delivery,
// the loading animation endpoint and the flex message wire types.
package line

// Message is a single outgoing message payload
type Message interface {
	message()
}

// TextMessage is a plain text message with optional quick reply buttons
type TextMessage struct {
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

func (*TextMessage) message() {}

// NewTextMessage creates a text message
func NewTextMessage(text string) *TextMessage {
	return &TextMessage{Type: "text", Text: text}
}

// WithQuickReply attaches quick reply buttons and returns the message
func (m *TextMessage) WithQuickReply(qr *QuickReply) *TextMessage {
	m.QuickReply = qr
	return m
}

// FlexMessage is a rich layout message, altText shows in chat list previews
type FlexMessage struct {
	Type       string        `json:"type"`
	AltText    string        `json:"altText"`
	Contents   FlexContainer `json:"contents"`
	QuickReply *QuickReply   `json:"quickReply,omitempty"`
}

func (*FlexMessage) message() {}

// NewFlexMessage creates a flex message
func NewFlexMessage(altText string, contents FlexContainer) *FlexMessage {
	return &FlexMessage{Type: "flex", AltText: altText, Contents: contents}
}

// WithQuickReply attaches quick reply buttons and returns the message
func (m *FlexMessage) WithQuickReply(qr *QuickReply) *FlexMessage {
	m.QuickReply = qr
	return m
}

// Action is a tap action for buttons and quick reply items.
// Type decides which of the remaining fields the API reads.
type Action struct {
	Type        string `json:"type"`
	Label       string `json:"label,omitempty"`
	Text        string `json:"text,omitempty"`
	Data        string `json:"data,omitempty"`
	DisplayText string `json:"displayText,omitempty"`
	URI         string `json:"uri,omitempty"`
}

// NewMessageAction sends text into the chat when tapped
func NewMessageAction(label, text string) Action {
	return Action{Type: "message", Label: label, Text: text}
}

// NewPostbackAction posts data back to the webhook, displayText appears in the chat
func NewPostbackAction(label, data, displayText string) Action {
	return Action{Type: "postback", Label: label, Data: data, DisplayText: displayText}
}

// NewURIAction opens the URI when tapped
func NewURIAction(label, uri string) Action {
	return Action{Type: "uri", Label: label, URI: uri}
}

// QuickReply holds the button row shown above the keyboard, 13 items max
type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

// QuickReplyItem is a single quick reply button
type QuickReplyItem struct {
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl,omitempty"`
	Action   Action `json:"action"`
}

// NewQuickReply builds a quick reply row from the given actions
func NewQuickReply(actions ...Action) *QuickReply {
	items := make([]QuickReplyItem, 0, len(actions))
	for _, action := range actions {
		items = append(items, QuickReplyItem{Type: "action", Action: action})
	}
	return &QuickReply{Items: items}
}
