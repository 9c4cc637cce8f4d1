// Package zoom implements 2x upscaling of grayscale sample grids.
//
// Two techniques are provided:
//   - Replicate: every sample becomes a constant 2x2 block.
//   - Interpolate: averaged samples are inserted between horizontal
//     neighbours, then the same is done vertically on the intermediate rows.
//
// # Coordinate System
//
// Grids are addressed as (row, col), 0-based, row-major. Row 0 is the top of
// the image and column 0 the left edge, matching image.Gray with
// X = col and Y = row.
//
// # Edge Policy
//
// The last column (horizontal pass) and the last row (vertical pass) have no
// following neighbour. Their inserted sample repeats the boundary value
// instead of extrapolating. A 1x1 grid therefore zooms to a 2x2 grid holding
// the same value four times.
//
// # Numeric Semantics
//
// Interpolated samples are computed in floating point and truncated toward
// zero when narrowed back to uint8. (10 + 21) / 2 = 15.5 becomes 15, never 16.
//
// # Thread Safety
//
// Transforms never mutate their input and keep no state between calls, so
// they can be called concurrently on the same Grid.
package zoom
