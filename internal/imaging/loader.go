package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/image-zoom/internal/zoom"
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O. Grayscale grids derived from cached images are cached alongside them.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	g, err := cache.LoadGrid("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	zoomed, err := zoom.Interpolate(g)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
	grids  map[string]*zoom.Grid
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
		grids:  make(map[string]*zoom.Grid),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. JPEG EXIF
// orientation is applied on load. The image is cached using the exact path
// string provided.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := openImage(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadGrid returns the grayscale grid for the image at path, loading and
// converting it on first use.
//
// The returned grid is shared between callers and must be treated as
// read-only. The zoom transforms never modify their input, so it can be
// passed to them directly.
func (c *ImageCache) LoadGrid(path string) (*zoom.Grid, error) {
	c.mu.RLock()
	if g, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	g := toGrid(img)

	c.mu.Lock()
	c.grids[path] = g
	c.mu.Unlock()

	return g, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.grids = make(map[string]*zoom.Grid)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	delete(c.grids, path)
	c.mu.Unlock()
}

// openImage decodes the file at path with EXIF auto-orientation.
func openImage(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// toGrid converts a decoded image to 8-bit grayscale using BT.601 luma
// weights, the same conversion image editors use for "grayscale" reads.
func toGrid(img image.Image) *zoom.Grid {
	if gray, ok := img.(*image.Gray); ok {
		return zoom.FromImage(gray)
	}

	// Grayscale keeps alpha in a separate channel; R=G=B holds the luma.
	n := imaging.Grayscale(img)
	w, h := n.Bounds().Dx(), n.Bounds().Dy()
	g := zoom.NewGrid(h, w)
	for y := 0; y < h; y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+4*w]
		for x := 0; x < w; x++ {
			g.Set(y, x, row[4*x])
		}
	}
	return g
}

// LoadGray reads the image at path and returns it as a grayscale grid.
//
// Color images are reduced to luma; alpha is ignored.
func LoadGray(path string) (*zoom.Grid, error) {
	img, err := openImage(path)
	if err != nil {
		return nil, err
	}
	return toGrid(img), nil
}

// LoadAttempt records one failed candidate in a fallback chain.
type LoadAttempt struct {
	Path string
	Err  error
}

// LoadResult describes where the grid returned by LoadWithFallback came from.
type LoadResult struct {
	// Grid is the loaded or synthesized input.
	Grid *zoom.Grid

	// Path is the candidate that loaded, or the path the synthesized test
	// pattern was written to.
	Path string

	// Synthesized is true when no candidate could be loaded and the test
	// pattern was generated instead.
	Synthesized bool

	// Attempts lists the candidates that failed, in the order they were tried.
	Attempts []LoadAttempt
}

// ErrNoCandidates is wrapped into the attempt list when LoadWithFallback is
// called with an empty candidate list.
var ErrNoCandidates = errors.New("no candidate image paths configured")

// LoadWithFallback tries each candidate path in order and returns the first
// image that decodes.
//
// If every candidate fails, the deterministic TestPattern is generated,
// written as PNG to fallbackPath (skipped when fallbackPath is empty) and
// returned with Synthesized set. This function only returns an error when
// the synthesized pattern cannot be persisted.
func LoadWithFallback(candidates []string, fallbackPath string) (*LoadResult, error) {
	res := &LoadResult{}

	for _, p := range candidates {
		if strings.TrimSpace(p) == "" {
			continue
		}
		g, err := LoadGray(p)
		if err != nil {
			res.Attempts = append(res.Attempts, LoadAttempt{Path: p, Err: err})
			continue
		}
		res.Grid = g
		res.Path = p
		return res, nil
	}

	if len(candidates) == 0 {
		res.Attempts = append(res.Attempts, LoadAttempt{Err: ErrNoCandidates})
	}

	res.Grid = TestPattern()
	res.Synthesized = true
	res.Path = fallbackPath
	if fallbackPath != "" {
		if err := SaveGrid(fallbackPath, res.Grid); err != nil {
			return nil, fmt.Errorf("failed to persist test pattern: %w", err)
		}
	}
	return res, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format based on file extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// Grayscale reports whether the decoded image is single-channel.
	// Color images are converted to luma before zooming.
	Grayscale bool `json:"grayscale"`

	// ZoomedWidth and ZoomedHeight are the dimensions after a 2x zoom.
	ZoomedWidth  int `json:"zoomed_width"`
	ZoomedHeight int `json:"zoomed_height"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it, including the
// size a 2x zoom would produce.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	colorDepth := "8-bit"
	grayscale := false
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64:
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
		grayscale = true
	case *image.Gray:
		grayscale = true
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		Grayscale:     grayscale,
		ZoomedWidth:   2 * bounds.Dx(),
		ZoomedHeight:  2 * bounds.Dy(),
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
