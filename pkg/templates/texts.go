package templates

import "github.com/vibpath/vibot/pkg/line"

// WelcomeText greets users who add the bot as a friend
const WelcomeText = "🤖 歡迎使用 VibPath 智能客服！\n\n🎵 專業頻率治療服務\n🏢 企業諮詢服務\n💬 智能對話助手"

// HelpText explains the available commands and services
const HelpText = `🤖 VibPath 智能客服使用說明

🎵 頻率治療服務：
• 輸入「頻率治療」或「服務項目」查看療程
• 輸入「四夜」查看四種頻率服務
• 專業頻率治療技術

🏢 企業服務：
• 輸入「公司介紹」了解我們的服務
• 輸入「關於我們」查看企業資訊

💬 智能對話：
• 直接輸入問題，AI 會為您解答
• 支援繁體中文對話

🔧 其他功能：
• 輸入「選單」顯示服務選單
• 輸入「幫助」顯示此說明

有任何問題都可以直接詢問我！`

// AI toggle and status reply texts
const (
	AIEnabledText  = "✅ AI 自動回覆已開啟\n\n我會使用 AI 來回答您的問題。\n如需關閉，請再次點擊此按鈕。"
	AIDisabledText = "⏸️ AI 自動回覆已關閉\n\n我將不會使用 AI 自動回答問題。\n您仍然可以使用快速回覆按鈕查看服務資訊。\n如需開啟，請再次點擊此按鈕。"

	AIStatusOnText  = "ℹ️ AI 自動回覆狀態\n\n目前狀態：✅ 已開啟\n\n我會使用 AI 來回答您的問題。"
	AIStatusOffText = "ℹ️ AI 自動回覆狀態\n\n目前狀態：⏸️ 已關閉\n\n我將不會使用 AI 自動回答問題。"
)

// fallback texts for failed or unanswerable requests
const (
	ApologyText            = "抱歉，我暫時無法處理您的請求，請稍後再試或使用快速回覆按鈕。"
	AgentBusyText          = "⚠️ AI 服務目前繁忙中（429 錯誤），請稍後再試或聯絡技術人員。"
	UnknownExplanationText = "抱歉，目前沒有相關說明資訊。請聯繫客服獲得更多幫助。"
	SystemErrorText        = "系統處理時發生錯誤，請稍後再試。"
)

// WelcomeMessages builds the follow-event greeting sequence
func WelcomeMessages() []line.Message {
	return []line.Message{
		line.NewTextMessage(WelcomeText).WithQuickReply(ServicesQuickReply()),
		ServiceMenu(),
	}
}

// HelpMessage builds the usage help reply
func HelpMessage() *line.TextMessage {
	return line.NewTextMessage(HelpText).WithQuickReply(ServicesQuickReply())
}
