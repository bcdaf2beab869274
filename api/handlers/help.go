// ABOUTME: Help handler serves the rendered module documentation
// ABOUTME: Source is the repository README, optionally rendered as Markdown

package handlers

import (
	"context"
	"net/http"

	"swaggerui-assets-api/core/help"

	"github.com/danielgtaylor/huma/v2"
)

// HelpHandler handles the help page
type HelpHandler struct {
	help *help.Service
}

// NewHelpHandler creates a new help handler
func NewHelpHandler(helpService *help.Service) *HelpHandler {
	return &HelpHandler{
		help: helpService,
	}
}

// RegisterRoutes registers help routes
func (h *HelpHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHelp",
		Method:      http.MethodGet,
		Path:        "/v1/help",
		Summary:     "Get the rendered help page",
		Tags:        []string{"Help"},
	}, h.GetHelp)
}

// GetHelpOutput defines the output for the help page
type GetHelpOutput struct {
	Body struct {
		HTML string `json:"html" doc:"Rendered help page HTML"`
	}
}

// GetHelp handles the GET /v1/help endpoint
func (h *HelpHandler) GetHelp(ctx context.Context, input *struct{}) (*GetHelpOutput, error) {
	output := &GetHelpOutput{}
	output.Body.HTML = h.help.Render()
	return output, nil
}
