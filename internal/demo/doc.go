// Package demo runs the zoom experiment end to end.
//
// A run loads an input image (trying each configured candidate, then
// synthesizing a test pattern), zooms it by replication and by
// interpolation, and writes the two results plus a comparison figure and a
// difference heatmap. Progress is printed as plain-text banners.
//
// # Configuration
//
// DefaultConfig reproduces the classic setup. ConfigFromEnv applies
// overrides from the environment:
//
//	IMAGE_ZOOM_INPUT=photo.png,backup.jpg   candidate list (first is primary)
//	IMAGE_ZOOM_OUTPUT_DIR=out               where files are written
//	IMAGE_ZOOM_NO_FIGURE=1                  skip comparison and difference figures
//	IMAGE_ZOOM_LOG_LEVEL=debug              log each failed candidate and write
package demo
