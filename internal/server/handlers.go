package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-zoom/internal/imaging"
	"github.com/ironsheep/image-zoom/internal/zoom"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_zoom").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_zoom":
		return s.handleImageZoom(args)
	case "image_zoom_compare":
		return s.handleImageZoomCompare(args)
	case "image_sample_values":
		return s.handleImageSampleValues(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// parseMethod resolves an optional method argument, using def when empty.
func parseMethod(name string, def zoom.Method) (zoom.Method, error) {
	if name == "" {
		return def, nil
	}
	return zoom.ParseMethod(name)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Zoom Handlers ===

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

type imageZoomArgs struct {
	Path       string      `json:"path"`
	Method     string      `json:"method"`
	Region     *regionArgs `json:"region,omitempty"`
	OutputPath string      `json:"output_path"`
}

func (s *Server) handleImageZoom(args json.RawMessage) (interface{}, error) {
	var a imageZoomArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	method, err := parseMethod(a.Method, zoom.Interpolation)
	if err != nil {
		return nil, err
	}

	var g *zoom.Grid
	if a.Region != nil {
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		g, err = imaging.CropGray(img, imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2})
		if err != nil {
			return nil, err
		}
	} else {
		g, err = s.cache.LoadGrid(a.Path)
		if err != nil {
			return nil, err
		}
	}

	return imaging.Zoom(g, method, a.OutputPath)
}

type imageZoomCompareArgs struct {
	Path          string `json:"path"`
	IncludeFigure bool   `json:"include_figure"`
}

// ZoomCompareResult is the image_zoom_compare response: the numeric
// comparison of the two zooms plus an optional side-by-side figure.
type ZoomCompareResult struct {
	*imaging.CompareResult

	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
	FigureBase64 string `json:"figure_base64,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
}

func (s *Server) handleImageZoomCompare(args json.RawMessage) (interface{}, error) {
	var a imageZoomCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.cache.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	rep, err := zoom.Replicate(g)
	if err != nil {
		return nil, err
	}
	interp, err := zoom.Interpolate(g)
	if err != nil {
		return nil, err
	}

	cmp, err := imaging.CompareGrids(rep, interp)
	if err != nil {
		return nil, err
	}
	res := &ZoomCompareResult{
		CompareResult: cmp,
		SourceWidth:   g.Cols(),
		SourceHeight:  g.Rows(),
	}

	if a.IncludeFigure {
		png, err := imaging.FigurePNG(imaging.ComparisonPanels(g, rep, interp))
		if err != nil {
			return nil, err
		}
		res.FigureBase64 = base64.StdEncoding.EncodeToString(png)
		res.MimeType = "image/png"
	}
	return res, nil
}

type imageSampleValuesArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleValues(args json.RawMessage) (interface{}, error) {
	var a imageSampleValuesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.cache.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	// An empty method samples the original grid.
	if a.Method != "" {
		method, err := zoom.ParseMethod(a.Method)
		if err != nil {
			return nil, err
		}
		if g, err = zoom.Apply(method, g); err != nil {
			return nil, err
		}
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleValues(g, points)
}
