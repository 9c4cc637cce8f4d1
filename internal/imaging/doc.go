// Package imaging provides the image I/O around the zoom transforms.
//
// It loads files into grayscale grids (with a fallback chain that ends in a
// synthetic test pattern), persists grids as PNG, renders side-by-side
// comparison figures and difference heatmaps, and computes numeric
// comparisons between zoom results.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position, the grid column
//   - Y: vertical position, the grid row
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Grayscale Conversion
//
// Color inputs are reduced to luma with ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B). Alpha is ignored.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless and never modify the grids passed to them.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions or points outside image bounds
//   - Grids of mismatched size passed to a comparison
//   - File I/O errors during loading or saving
//
// LoadWithFallback is the exception: a missing or undecodable input never
// fails, it degrades to TestPattern.
package imaging
