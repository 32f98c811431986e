package templates

import "github.com/vibpath/vibot/pkg/line"

// ServicesQuickReply offers the entry-point service shortcuts
func ServicesQuickReply() *line.QuickReply {
	return line.NewQuickReply(
		line.NewMessageAction("🏢 公司介紹", "公司介紹"),
		line.NewMessageAction("🎵 頻率治療", "頻率治療"),
		line.NewMessageAction("📋 選單", "選單"),
		line.NewPostbackAction("💡 快速解說", "explain_frequency", "頻率治療原理說明"),
	)
}

// DetailedQuickReply offers per-product explanation shortcuts, attached
// to AI replies so users can drill into specific products
func DetailedQuickReply() *line.QuickReply {
	return line.NewQuickReply(
		line.NewPostbackAction("🌍 7.83Hz", "explain_7_83hz", "7.83Hz 舒曼共振說明"),
		line.NewPostbackAction("🧠 13Hz", "explain_13Freq", "13Hz α波頻率說明"),
		line.NewPostbackAction("⚡ 40Hz", "explain_40hz", "40Hz γ波頻率說明"),
		line.NewPostbackAction("🔄 雙頻", "explain_double_freq", "雙頻複合治療說明"),
		line.NewPostbackAction("🏢 公司", "explain_company", "VibPath 公司介紹"),
		line.NewMessageAction("🛒 購買", "頻率治療"),
	)
}

// BasicQuickReply offers navigation shortcuts plus the AI toggle
func BasicQuickReply() *line.QuickReply {
	return line.NewQuickReply(
		line.NewMessageAction("🏢 公司介紹", "公司介紹"),
		line.NewMessageAction("🎵 頻率治療", "頻率治療"),
		line.NewMessageAction("📋 選單", "選單"),
		line.NewMessageAction("❓ 幫助", "幫助"),
		line.NewMessageAction("🤖 AI開關", "ai開關"),
	)
}

// ProductsQuickReply offers explanation shortcuts for the carousel
func ProductsQuickReply() *line.QuickReply {
	return line.NewQuickReply(
		line.NewPostbackAction("🌍 7.83Hz", "explain_7_83hz", "7.83Hz 舒曼共振原理說明"),
		line.NewPostbackAction("🧠 13Freq", "explain_13Freq", "13 個頻率效果說明"),
		line.NewPostbackAction("⚡ 40Hz", "explain_40hz", "40Hz γ波頻率能量說明"),
		line.NewPostbackAction("🔄 雙頻", "explain_double_freq", "雙頻複合治療原理說明"),
		line.NewMessageAction("📋 選單", "選單"),
	)
}
