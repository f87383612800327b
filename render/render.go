// Package render reports solver results: the two scalar answers as an
// output file, and the optimal tiles overlaid on the map as text or PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/pathset"
)

// TileOptimal marks a cell on at least one minimum-cost route in ASCII output.
const TileOptimal = 'O'

// ErrBadImageOptions indicates a non-positive cell size or negative border.
var ErrBadImageOptions = errors.New("render: cell pixels must be positive and border non-negative")

// ASCII returns the map of g with every optimal cell other than the start
// and end replaced by TileOptimal.
func ASCII(g *gridgraph.Grid, optimal []gridgraph.Cell) string {
	w, _ := g.Bounds()
	rows := []byte(g.String())
	for _, c := range optimal {
		if c == g.Start() || c == g.End() || !g.InBounds(c) {
			continue
		}
		rows[c.Y*(w+1)+c.X] = TileOptimal
	}
	return string(rows)
}

// ImageOptions controls PNG rasterisation.
type ImageOptions struct {
	CellPixels int // edge length of one cell, in pixels
	Border     int // margin around the maze, in pixels

	Wall, Floor, Optimal, Start, End, Background color.Color
}

// DefaultImageOptions returns 9-pixel cells with a 5-pixel white border.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		CellPixels: 9,
		Border:     5,
		Wall:       color.RGBA{40, 40, 40, 255},
		Floor:      color.RGBA{235, 235, 235, 255},
		Optimal:    color.RGBA{255, 190, 60, 255},
		Start:      color.RGBA{40, 180, 70, 255},
		End:        color.RGBA{100, 120, 255, 255},
		Background: color.White,
	}
}

// Raster returns a one-pixel-per-cell image of g with optimal cells coloured.
func Raster(g *gridgraph.Grid, optimal []gridgraph.Cell, opts ImageOptions) *image.RGBA {
	w, h := g.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		col := opts.Floor
		if g.IsWall(c) {
			col = opts.Wall
		}
		img.Set(c.X, c.Y, col)
	}
	for _, c := range optimal {
		if g.InBounds(c) {
			img.Set(c.X, c.Y, opts.Optimal)
		}
	}
	img.Set(g.Start().X, g.Start().Y, opts.Start)
	img.Set(g.End().X, g.End().Y, opts.End)
	return img
}

// Image scales the raster of g by CellPixels and frames it with Border.
func Image(g *gridgraph.Grid, optimal []gridgraph.Cell, opts ImageOptions) (*image.RGBA, error) {
	if opts.CellPixels <= 0 || opts.Border < 0 {
		return nil, fmt.Errorf("%w: cell=%d border=%d", ErrBadImageOptions, opts.CellPixels, opts.Border)
	}
	w, h := g.Bounds()
	sw, sh := w*opts.CellPixels, h*opts.CellPixels
	scaled := image_utils.ResizeImage(Raster(g, optimal, opts), sw, sh)

	frame := image.NewRGBA(image.Rect(0, 0, sw+2*opts.Border, sh+2*opts.Border))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	pic := image_utils.NewCompositeImage()
	if err := pic.AddImage(frame, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: frame: %w", err)
	}
	if err := pic.AddImage(scaled, image.Pt(opts.Border, opts.Border)); err != nil {
		return nil, fmt.Errorf("render: maze: %w", err)
	}
	return image_utils.ToRGBA(pic), nil
}

// PNG encodes Image(g, optimal, opts) to w.
func PNG(w io.Writer, g *gridgraph.Grid, optimal []gridgraph.Cell, opts ImageOptions) error {
	img, err := Image(g, optimal, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// FormatResult renders the two answers one per line: the minimal cost,
// then the optimal-tile count.
func FormatResult(sum pathset.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%d\n", sum.Cost, sum.Tiles)
	return sb.String()
}

// WriteResult writes FormatResult(sum) to path, replacing any existing file.
func WriteResult(path string, sum pathset.Summary) error {
	if err := os.WriteFile(path, []byte(FormatResult(sum)), 0o644); err != nil {
		return fmt.Errorf("render: write result: %w", err)
	}
	return nil
}

// WritePNG creates path and encodes the overlay image into it.
func WritePNG(path string, g *gridgraph.Grid, optimal []gridgraph.Cell, opts ImageOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	return PNG(f, g, optimal, opts)
}
