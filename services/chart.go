package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

var (
	barTrackColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	barFillColor  = color.RGBA{R: 33, G: 99, B: 160, A: 255}
)

// Bar image size in pixels. The PDF scales it to the column width.
const (
	barWidth  = 600
	barHeight = 24
)

// renderBarPNG draws a horizontal bar filled to fraction (clamped to [0,1])
// and returns it PNG encoded.
func renderBarPNG(fraction float64) ([]byte, error) {
	if fraction != fraction || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, barWidth, barHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: barTrackColor}, image.Point{}, draw.Src)

	filled := int(fraction*barWidth + 0.5)
	if filled > 0 {
		draw.Draw(img, image.Rect(0, 0, filled, barHeight), &image.Uniform{C: barFillColor}, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode bar: %w", err)
	}
	return buf.Bytes(), nil
}

// barFractions scales every point against the largest value of the series.
func barFractions(points []ChartPoint) []float64 {
	var peak float64
	for _, p := range points {
		if p.Value > peak {
			peak = p.Value
		}
	}
	out := make([]float64, len(points))
	if peak <= 0 {
		return out
	}
	for i, p := range points {
		out[i] = p.Value / peak
	}
	return out
}
