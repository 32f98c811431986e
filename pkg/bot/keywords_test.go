package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		text string
		want messageKind
	}{
		{"frequency therapy", "我想了解頻率治療", kindFrequency},
		{"frequency hz upper case", "40HZ是什麼", kindFrequency},
		{"frequency course", "有哪些療程", kindFrequency},
		{"business intro", "公司介紹", kindBusiness},
		{"business about us", "關於我們的資訊", kindBusiness},
		{"menu chinese", "選單", kindMenu},
		{"menu english upper case", "MENU", kindMenu},
		{"menu via service word", "你們有什麼服務", kindMenu},
		{"help chinese", "幫助", kindHelp},
		{"help english", "HELP", kindHelp},
		{"help how to", "怎麼用", kindHelp},
		{"frequency beats menu", "頻率服務", kindFrequency},
		{"business beats help", "公司介紹的說明", kindBusiness},
		{"no keywords", "今天天氣如何", kindGeneral},
		{"empty", "", kindGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectKind(tt.text))
		})
	}
}
