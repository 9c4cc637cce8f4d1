package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and the size a 2x zoom would produce.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Zoom Operations
		{
			Name:        "image_zoom",
			Description: "Zoom a grayscale version of an image by exactly 2x and return it as base64-encoded PNG. Replication repeats each pixel into a 2x2 block; interpolation inserts the truncated average of neighbouring pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"replication", "interpolation"},
						"default":     "interpolation",
						"description": "Zoom method",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to crop before zooming. (x1,y1) inclusive, (x2,y2) exclusive.",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the zoomed PNG",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_zoom_compare",
			Description: "Zoom an image by both replication and interpolation and compare the results (MSE, PSNR, differing pixels). Optionally returns a side-by-side figure.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"include_figure": map[string]interface{}{
						"type":        "boolean",
						"default":     false,
						"description": "Include the original/replication/interpolation figure as base64 PNG",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_values",
			Description: "Read grayscale intensities at specific points, either on the original image or on its 2x zoom.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"", "replication", "interpolation"},
						"description": "Zoom method to apply before sampling. Empty samples the original image.",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
