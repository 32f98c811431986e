package bot

import "strings"

// messageKind classifies a text message by its keyword triggers
type messageKind int

const (
	kindGeneral messageKind = iota
	kindFrequency
	kindBusiness
	kindMenu
	kindHelp
)

// keyword sets checked in priority order, substring match on lowercased text
var (
	frequencyKeywords = []string{"頻率", "赫茲", "hz", "療程", "四夜", "服務項目", "頻率治療"}
	businessKeywords  = []string{"公司介紹", "關於我們", "企業簡介", "主業", "業務介紹"}
	menuKeywords      = []string{"選單", "menu", "服務", "功能"}
	helpKeywords      = []string{"幫助", "help", "說明", "使用方法", "怎麼用"}
)

// detectKind matches the text against the keyword sets, first hit wins
func detectKind(text string) messageKind {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, frequencyKeywords):
		return kindFrequency
	case containsAny(lower, businessKeywords):
		return kindBusiness
	case containsAny(lower, menuKeywords):
		return kindMenu
	case containsAny(lower, helpKeywords):
		return kindHelp
	}
	return kindGeneral
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
