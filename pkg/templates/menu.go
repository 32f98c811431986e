package templates

import "github.com/vibpath/vibot/pkg/line"

// ServiceMenu builds the main service menu card
func ServiceMenu() *line.FlexMessage {
	bubble := line.Bubble{
		Type: "bubble",
		Body: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.FlexComponent{
				line.Text{Type: "text", Text: "VibPath 智能客服 - 阿弦", Weight: "bold", Size: "xl", Color: "#1976D2"},
				line.Text{Type: "text", Text: "選擇您需要的服務", Size: "md", Color: "#666666", Margin: "md"},
				line.Separator{Type: "separator", Margin: "xl"},
				line.Box{
					Type:    "box",
					Layout:  "vertical",
					Margin:  "xl",
					Spacing: "sm",
					Contents: []line.FlexComponent{
						menuRow("🎵", "商品介紹", "專業產品服務介紹"),
						line.Separator{Type: "separator"},
						menuRow("🏢", "公司介紹", "了解 VibPath 企業資訊"),
						line.Separator{Type: "separator"},
						menuRow("💬", "智能客服", "AI 客服為您解答產品問題"),
					},
				},
			},
		},
		Footer: &line.Box{
			Type:    "box",
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []line.FlexComponent{
				line.Button{Type: "button", Style: "primary", Action: line.NewMessageAction("🎵 商品介紹", "商品介紹")},
				line.Button{Type: "button", Style: "secondary", Action: line.NewMessageAction("🏢 公司介紹", "公司介紹")},
			},
		},
	}
	return line.NewFlexMessage("VibPath 服務選單", bubble)
}

// menuRow builds one emoji + title + subtitle row of the service menu
func menuRow(emoji, title, subtitle string) line.Box {
	return line.Box{
		Type:       "box",
		Layout:     "horizontal",
		Spacing:    "md",
		PaddingAll: "sm",
		Contents: []line.FlexComponent{
			line.Text{Type: "text", Text: emoji, Size: "xl", Flex: 1},
			line.Box{
				Type:   "box",
				Layout: "vertical",
				Flex:   4,
				Contents: []line.FlexComponent{
					line.Text{Type: "text", Text: title, Weight: "bold", Size: "md"},
					line.Text{Type: "text", Text: subtitle, Size: "sm", Color: "#666666"},
				},
			},
		},
	}
}

// ErrorMessage builds an error card with a retry button
func ErrorMessage(errorText string) *line.FlexMessage {
	bubble := line.Bubble{
		Type: "bubble",
		Body: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.FlexComponent{
				line.Text{Type: "text", Text: "❌ 發生錯誤", Weight: "bold", Size: "xl", Color: "#E53E3E"},
				line.Text{Type: "text", Text: errorText, Size: "md", Color: "#666666", Margin: "md", Wrap: true},
			},
		},
		Footer: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.FlexComponent{
				line.Button{Type: "button", Style: "secondary", Action: line.NewMessageAction("🔄 重試", "重試")},
			},
		},
	}
	return line.NewFlexMessage("錯誤訊息", bubble)
}
