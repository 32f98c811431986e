package line

// FlexContainer is the top-level contents of a flex message
type FlexContainer interface {
	flexContainer()
}

// Bubble is a single flex card
type Bubble struct {
	Type   string `json:"type"`
	Size   string `json:"size,omitempty"`
	Hero   *Image `json:"hero,omitempty"`
	Body   *Box   `json:"body,omitempty"`
	Footer *Box   `json:"footer,omitempty"`
}

func (Bubble) flexContainer() {}

// Carousel holds up to 12 bubbles scrolled horizontally
type Carousel struct {
	Type     string   `json:"type"`
	Contents []Bubble `json:"contents"`
}

func (Carousel) flexContainer() {}

// FlexComponent is a node inside a box layout
type FlexComponent interface {
	flexComponent()
}

// Box lays out child components, layout is vertical or horizontal
type Box struct {
	Type       string          `json:"type"`
	Layout     string          `json:"layout"`
	Contents   []FlexComponent `json:"contents"`
	Spacing    string          `json:"spacing,omitempty"`
	Margin     string          `json:"margin,omitempty"`
	PaddingAll string          `json:"paddingAll,omitempty"`
	Flex       int             `json:"flex,omitempty"`
}

func (Box) flexComponent() {}

// Text is a styled text component
type Text struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
	Margin string `json:"margin,omitempty"`
	Flex   int    `json:"flex,omitempty"`
}

func (Text) flexComponent() {}

// Button is a tappable button bound to an action
type Button struct {
	Type   string `json:"type"`
	Action Action `json:"action"`
	Style  string `json:"style,omitempty"`
	Height string `json:"height,omitempty"`
	Color  string `json:"color,omitempty"`
	Margin string `json:"margin,omitempty"`
}

func (Button) flexComponent() {}

// Image is an image component, also used as a bubble hero
type Image struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Size        string `json:"size,omitempty"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	AspectMode  string `json:"aspectMode,omitempty"`
}

func (Image) flexComponent() {}

// Separator draws a divider line
type Separator struct {
	Type   string `json:"type"`
	Margin string `json:"margin,omitempty"`
}

func (Separator) flexComponent() {}
