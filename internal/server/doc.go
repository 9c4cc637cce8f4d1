// Package server implements the MCP (Model Context Protocol) server for the
// 2x zoom tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_zoom: Zoom by replication or interpolation, optionally a region
//   - image_zoom_compare: Compare both zoom methods on one image
//   - image_sample_values: Read intensities on the original or zoomed grid
//
// # Image Caching
//
// Images and their grayscale grids are cached by path for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with
// code -32000 and the Go error string as data. Malformed tools/call params
// use -32602 and unknown methods -32601.
package server
