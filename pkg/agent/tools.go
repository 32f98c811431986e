package agent

import (
	"encoding/json"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/vibpath/vibot/pkg/templates"
)

// tool names the model may call
const (
	toolCompanyIntro   = "show_company_introduction"
	toolProductCatalog = "show_product_catalog"
	toolServiceMenu    = "show_service_menu"
	toolProductDetails = "show_product_details"
)

// agentTools declares the functions exposed to the model. Each maps to a
// canned flex message or product explanation, the model only decides when to
// show them.
var agentTools = []openai.Tool{
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        toolCompanyIntro,
			Description: "Show the company introduction card with the shop link",
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        toolProductCatalog,
			Description: "Show the product catalog carousel with all frequency therapy devices",
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        toolServiceMenu,
			Description: "Show the service menu",
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        toolProductDetails,
			Description: "Show detailed information for a specific product",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"product_type": {
						Type:        jsonschema.String,
						Description: "Type of product (7_83hz, 13freq, 40hz, double_freq)",
					},
				},
				Required: []string{"product_type"},
			},
		},
	},
}

// productDetailKeys maps model-supplied product names, including Chinese
// aliases, to explanation keys
var productDetailKeys = map[string]string{
	"7_83hz":      "explain_7_83hz",
	"7.83hz":      "explain_7_83hz",
	"舒曼波":         "explain_7_83hz",
	"13freq":      "explain_13Freq",
	"13頻":         "explain_13Freq",
	"脈輪":          "explain_13Freq",
	"40hz":        "explain_40hz",
	"gamma":       "explain_40hz",
	"γ波":          "explain_40hz",
	"double_freq": "explain_double_freq",
	"雙頻":          "explain_double_freq",
	"alpha":       "explain_double_freq",
	"theta":       "explain_double_freq",
}

const unknownProductText = "抱歉，找不到該產品的詳細資訊。請使用選單查看我們的產品。"

// runTool executes a tool call requested by the model. It returns ok=false
// for tools the model invented, the caller then falls back to the plain text
// answer.
func (a *Agent) runTool(call openai.ToolCall) (Reply, bool) {
	switch call.Function.Name {
	case toolCompanyIntro:
		return Reply{Flex: templates.CompanyIntro(a.assets)}, true
	case toolProductCatalog:
		return Reply{Flex: templates.ProductCarousel(a.assets)}, true
	case toolServiceMenu:
		return Reply{Flex: templates.ServiceMenu()}, true
	case toolProductDetails:
		return a.productDetails(call.Function.Arguments), true
	}
	lgr.Printf("[WARN] model requested unknown tool %q", call.Function.Name)
	return Reply{}, false
}

// productDetails resolves the product_type argument to an explanation text
func (a *Agent) productDetails(rawArgs string) Reply {
	var args struct {
		ProductType string `json:"product_type"`
	}
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			lgr.Printf("[WARN] bad product details arguments %q: %v", rawArgs, err)
			return Reply{Text: unknownProductText}
		}
	}

	key, ok := productDetailKeys[strings.ToLower(strings.TrimSpace(args.ProductType))]
	if !ok {
		return Reply{Text: unknownProductText}
	}
	explanation, ok := templates.Explanation(key)
	if !ok {
		return Reply{Text: unknownProductText}
	}
	return Reply{Text: explanation}
}
