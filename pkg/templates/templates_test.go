package templates

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibpath/vibot/pkg/line"
)

func TestAssets_ImageURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{
			name:    "gcs bucket",
			baseURL: "https://storage.googleapis.com/vibpath-static",
			path:    "services/40HZ.jpg",
			want:    "https://storage.googleapis.com/vibpath-static/images/services/40HZ.jpg",
		},
		{
			name:    "gcs bucket with trailing slash",
			baseURL: "https://storage.googleapis.com/vibpath-static/",
			path:    "business/HomePage.png",
			want:    "https://storage.googleapis.com/vibpath-static/images/business/HomePage.png",
		},
		{
			name:    "custom host",
			baseURL: "https://bot.example.com",
			path:    "services/13Freq.jpg",
			want:    "https://bot.example.com/static/images/services/13Freq.jpg",
		},
		{
			name:    "no base url falls back to placeholder",
			baseURL: "",
			path:    "services/7.83HZ.jpg",
			want:    "https://via.placeholder.com/1024x640/CCCCCC/FFFFFF?text=services+7.83HZ.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAssets(tt.baseURL).ImageURL(tt.path))
		})
	}
}

func TestServiceMenu(t *testing.T) {
	msg := ServiceMenu()

	assert.Equal(t, "VibPath 服務選單", msg.AltText)

	bubble, ok := msg.Contents.(line.Bubble)
	require.True(t, ok)
	require.NotNil(t, bubble.Body)
	require.NotEmpty(t, bubble.Body.Contents)

	title, ok := bubble.Body.Contents[0].(line.Text)
	require.True(t, ok)
	assert.Equal(t, "VibPath 智能客服 - 阿弦", title.Text)
	assert.Equal(t, "bold", title.Weight)

	require.NotNil(t, bubble.Footer)
	require.Len(t, bubble.Footer.Contents, 2)
	primary, ok := bubble.Footer.Contents[0].(line.Button)
	require.True(t, ok)
	assert.Equal(t, "primary", primary.Style)
	assert.Equal(t, "商品介紹", primary.Action.Text)
}

func TestServiceMenu_Marshals(t *testing.T) {
	data, err := json.Marshal(ServiceMenu())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"flex"`)
	assert.Contains(t, string(data), `"type":"bubble"`)
	assert.Contains(t, string(data), "智能客服")
}

func TestErrorMessage(t *testing.T) {
	msg := ErrorMessage("連線失敗")

	assert.Equal(t, "錯誤訊息", msg.AltText)

	bubble, ok := msg.Contents.(line.Bubble)
	require.True(t, ok)
	require.Len(t, bubble.Body.Contents, 2)

	detail, ok := bubble.Body.Contents[1].(line.Text)
	require.True(t, ok)
	assert.Equal(t, "連線失敗", detail.Text)
	assert.True(t, detail.Wrap)
}

func TestCompanyIntro(t *testing.T) {
	assets := NewAssets("https://storage.googleapis.com/vibpath-static")
	msg := CompanyIntro(assets)

	assert.Equal(t, "VibPath 公司介紹", msg.AltText)

	bubble, ok := msg.Contents.(line.Bubble)
	require.True(t, ok)
	require.NotNil(t, bubble.Hero)
	assert.Equal(t, "https://storage.googleapis.com/vibpath-static/images/business/HomePage.png", bubble.Hero.URL)
	assert.Equal(t, "cover", bubble.Hero.AspectMode)

	require.NotNil(t, bubble.Footer)
	require.Len(t, bubble.Footer.Contents, 2)
	shop, ok := bubble.Footer.Contents[0].(line.Button)
	require.True(t, ok)
	assert.Equal(t, "uri", shop.Action.Type)
	assert.Equal(t, "https://shopee.tw/baba1018", shop.Action.URI)
}

func TestProductCarousel(t *testing.T) {
	assets := NewAssets("https://bot.example.com")
	msg := ProductCarousel(assets)

	assert.Equal(t, "VibPath 頻率治療服務", msg.AltText)

	carousel, ok := msg.Contents.(line.Carousel)
	require.True(t, ok)
	require.Len(t, carousel.Contents, 4)

	wantNames := []string{"7.83Hz 舒曼共振", "13Freq α波頻率", "40Hz γ波頻率", "雙頻複合治療"}
	wantExplain := []string{"explain_7_83hz", "explain_13Freq", "explain_40hz", "explain_double_freq"}
	for i, bubble := range carousel.Contents {
		require.NotNil(t, bubble.Hero, "bubble %d", i)
		assert.True(t, strings.HasPrefix(bubble.Hero.URL, "https://bot.example.com/static/images/services/"), "bubble %d hero %s", i, bubble.Hero.URL)

		name, ok := bubble.Body.Contents[0].(line.Text)
		require.True(t, ok)
		assert.Equal(t, wantNames[i], name.Text)

		require.NotNil(t, bubble.Footer)
		require.Len(t, bubble.Footer.Contents, 2)
		explain, ok := bubble.Footer.Contents[1].(line.Button)
		require.True(t, ok)
		assert.Equal(t, wantExplain[i], explain.Action.Data)
	}
}

func TestQuickReplies(t *testing.T) {
	tests := []struct {
		name      string
		qr        *line.QuickReply
		wantCount int
		wantFirst string
	}{
		{name: "services", qr: ServicesQuickReply(), wantCount: 4, wantFirst: "🏢 公司介紹"},
		{name: "detailed", qr: DetailedQuickReply(), wantCount: 6, wantFirst: "🌍 7.83Hz"},
		{name: "basic", qr: BasicQuickReply(), wantCount: 5, wantFirst: "🏢 公司介紹"},
		{name: "products", qr: ProductsQuickReply(), wantCount: 5, wantFirst: "🌍 7.83Hz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.qr.Items, tt.wantCount)
			assert.Equal(t, tt.wantFirst, tt.qr.Items[0].Action.Label)
			for _, item := range tt.qr.Items {
				assert.Equal(t, "action", item.Type)
			}
		})
	}
}

func TestDetailedQuickReply_CoversAllExplanations(t *testing.T) {
	qr := DetailedQuickReply()

	var postbacks []string
	for _, item := range qr.Items {
		if item.Action.Type == "postback" {
			postbacks = append(postbacks, item.Action.Data)
		}
	}

	for _, key := range postbacks {
		_, ok := Explanation(key)
		assert.True(t, ok, "quick reply references missing explanation %q", key)
	}
}

func TestExplanation(t *testing.T) {
	text, ok := Explanation("explain_40hz")
	require.True(t, ok)
	assert.Contains(t, text, "40Hz")
	assert.Contains(t, text, "專注力")

	_, ok = Explanation("explain_unknown")
	assert.False(t, ok)
}

func TestWelcomeMessages(t *testing.T) {
	msgs := WelcomeMessages()
	require.Len(t, msgs, 2)

	greeting, ok := msgs[0].(*line.TextMessage)
	require.True(t, ok)
	assert.Equal(t, WelcomeText, greeting.Text)
	require.NotNil(t, greeting.QuickReply)

	_, ok = msgs[1].(*line.FlexMessage)
	assert.True(t, ok)
}

func TestHelpMessage(t *testing.T) {
	msg := HelpMessage()
	assert.Contains(t, msg.Text, "使用說明")
	require.NotNil(t, msg.QuickReply)
	assert.Len(t, msg.QuickReply.Items, 4)
}
