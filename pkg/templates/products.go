package templates

import "github.com/vibpath/vibot/pkg/line"

// product is one frequency therapy offering shown in the carousel
type product struct {
	name        string
	description string
	image       string
	benefits    []string
	shopLabel   string
	shopURL     string
	explainData string
	explainText string
}

var products = []product{
	{
		name:        "7.83Hz 舒曼共振",
		description: "地球基礎頻率\n放鬆身心 · 減壓療癒",
		image:       "services/7.83HZ.jpg",
		benefits:    []string{"深度放鬆", "壓力釋放", "情緒平衡"},
		shopLabel:   "商品蝦皮連結",
		shopURL:     "https://tw.shp.ee/1d1RBDe",
		explainData: "explain_7_83hz",
		explainText: "7.83Hz 舒曼共振原理說明",
	},
	{
		name:        "13Freq α波頻率",
		description: "大腦α波共振\n專注提升 · 創意啟發",
		image:       "services/13Freq.jpg",
		benefits:    []string{"專注力提升", "創意激發", "學習效率"},
		shopLabel:   "商品蝦皮連結",
		shopURL:     "https://tw.shp.ee/jm7cdmq",
		explainData: "explain_13Freq",
		explainText: "13 個頻率效果說明",
	},
	{
		name:        "40Hz γ波頻率",
		description: "高頻能量激活\n意識提升 · 靈性覺醒",
		image:       "services/40HZ.jpg",
		benefits:    []string{"意識提升", "直覺增強", "靈性開發"},
		shopLabel:   "商品蝦皮連結",
		shopURL:     "https://tw.shp.ee/GJc8Yru",
		explainData: "explain_40hz",
		explainText: "40Hz γ波頻率能量說明",
	},
	{
		name:        "雙頻複合治療",
		description: "多頻率組合\n全方位療癒體驗",
		image:       "services/DoubleFreq.jpg",
		benefits:    []string{"深層療癒", "能量平衡", "整體調和"},
		shopLabel:   "💰 療程價格",
		shopURL:     "https://tw.shp.ee/ciUiZfy",
		explainData: "explain_double_freq",
		explainText: "雙頻複合治療原理說明",
	},
}

// CompanyIntro builds the company introduction card
func CompanyIntro(assets *Assets) *line.FlexMessage {
	bubble := line.Bubble{
		Type: "bubble",
		Hero: &line.Image{
			Type:        "image",
			URL:         assets.ImageURL("business/HomePage.png"),
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
		},
		Body: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.FlexComponent{
				line.Text{Type: "text", Text: "VibPath 頻率治療", Weight: "bold", Size: "xl", Color: "#2C3E50"},
				line.Text{Type: "text", Text: "專業頻率治療服務 · 身心靈平衡體驗", Size: "sm", Color: "#7F8C8D", Margin: "md"},
				line.Separator{Type: "separator", Margin: "lg"},
				line.Box{
					Type:   "box",
					Layout: "vertical",
					Margin: "lg",
					Contents: []line.FlexComponent{
						line.Text{Type: "text", Text: "🎵 專業頻率治療技術", Size: "sm", Color: "#34495E", Margin: "sm"},
						line.Text{Type: "text", Text: "🔬 科學驗證頻率配方", Size: "sm", Color: "#34495E", Margin: "sm"},
						line.Text{Type: "text", Text: "💆 個人化療程設計", Size: "sm", Color: "#34495E", Margin: "sm"},
						line.Text{Type: "text", Text: "✨ 身心靈全面平衡", Size: "sm", Color: "#34495E", Margin: "sm"},
					},
				},
			},
		},
		Footer: footerBox(
			line.NewURIAction("蝦皮首頁", "https://shopee.tw/baba1018"),
			line.NewPostbackAction("📖 詳細介紹", "explain_company", "了解更多公司資訊"),
		),
	}
	return line.NewFlexMessage("VibPath 公司介紹", bubble)
}

// ProductCarousel builds the carousel of frequency therapy product cards
func ProductCarousel(assets *Assets) *line.FlexMessage {
	bubbles := make([]line.Bubble, 0, len(products))
	for _, p := range products {
		bubbles = append(bubbles, productBubble(assets, p))
	}
	return line.NewFlexMessage("VibPath 頻率治療服務", line.Carousel{Type: "carousel", Contents: bubbles})
}

// productBubble builds a single product card with hero image, benefit
// list and shop/explanation footer
func productBubble(assets *Assets, p product) line.Bubble {
	features := []line.FlexComponent{
		line.Text{Type: "text", Text: "療效特色", Weight: "bold", Size: "sm", Color: "#34495E"},
	}
	for _, benefit := range p.benefits {
		features = append(features, line.Text{Type: "text", Text: "• " + benefit, Size: "xs", Color: "#7F8C8D", Margin: "sm"})
	}

	return line.Bubble{
		Type: "bubble",
		Hero: &line.Image{
			Type:        "image",
			URL:         assets.ImageURL(p.image),
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
		},
		Body: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.FlexComponent{
				line.Text{Type: "text", Text: p.name, Weight: "bold", Size: "lg", Color: "#2C3E50"},
				line.Text{Type: "text", Text: p.description, Size: "sm", Color: "#7F8C8D", Margin: "md", Wrap: true},
				line.Separator{Type: "separator", Margin: "lg"},
				line.Box{Type: "box", Layout: "vertical", Margin: "lg", Contents: features},
			},
		},
		Footer: footerBox(
			line.NewURIAction(p.shopLabel, p.shopURL),
			line.NewPostbackAction("產品介紹", p.explainData, p.explainText),
		),
	}
}

// footerBox wraps actions into the standard secondary button footer
func footerBox(actions ...line.Action) *line.Box {
	buttons := make([]line.FlexComponent, 0, len(actions))
	for _, action := range actions {
		buttons = append(buttons, line.Button{Type: "button", Style: "secondary", Margin: "sm", Action: action})
	}
	return &line.Box{Type: "box", Layout: "vertical", Spacing: "sm", Contents: buttons}
}
