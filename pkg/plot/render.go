package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label border thickness in pixels.
const borderWidth = 2

// LabelStyle controls how per-cell parameter labels are drawn.
type LabelStyle struct {
	// White text with a black outline when true, the inverse when false.
	White bool
	// Border disables the outline entirely when false.
	Border bool
}

// DefaultLabelStyle is white text with a black outline.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{White: true, Border: true}
}

// assembleGrid pastes the sampled cells onto a black canvas with the given
// spacing and draws parameter labels into each cell's top-left corner.
func assembleGrid(cells [][]image.Image, x, y Axis, spacing int, style LabelStyle) (image.Image, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("no cells to assemble")
	}

	first := cells[0][0]
	cellWidth := first.Bounds().Dx()
	cellHeight := first.Bounds().Dy()

	cols := len(cells[0])
	rows := len(cells)
	totalWidth := cols*cellWidth + (cols-1)*spacing
	totalHeight := rows*cellHeight + (rows-1)*spacing

	canvas := image.NewRGBA(image.Rect(0, 0, totalWidth, totalHeight))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	xLabels := x.Labels()
	var yLabels []string
	if !y.Empty() {
		yLabels = y.Labels()
	}

	for yIdx, row := range cells {
		for xIdx, cell := range row {
			if cell == nil {
				continue
			}
			if cell.Bounds().Dx() != cellWidth || cell.Bounds().Dy() != cellHeight {
				return nil, fmt.Errorf("cell (%d,%d) is %dx%d, expected %dx%d",
					xIdx, yIdx, cell.Bounds().Dx(), cell.Bounds().Dy(), cellWidth, cellHeight)
			}

			xPos := xIdx * (cellWidth + spacing)
			yPos := yIdx * (cellHeight + spacing)
			rect := image.Rect(xPos, yPos, xPos+cellWidth, yPos+cellHeight)
			draw.Draw(canvas, rect, cell, cell.Bounds().Min, draw.Src)

			lines := []string{fmt.Sprintf("%s: %s", x.Param, xLabels[xIdx])}
			if yLabels != nil {
				lines = append(lines, fmt.Sprintf("%s: %s", y.Param, yLabels[yIdx]))
			}
			drawLabel(canvas, xPos+5, yPos+5, lines, style)
		}
	}

	return canvas, nil
}

// drawLabel renders the label lines at (x, y), outlining each line first so
// the text stays readable on any cell content.
func drawLabel(dst draw.Image, x, y int, lines []string, style LabelStyle) {
	textColor := color.RGBA{255, 255, 255, 255}
	outlineColor := color.RGBA{0, 0, 0, 255}
	if !style.White {
		textColor, outlineColor = outlineColor, textColor
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	for i, line := range lines {
		baseline := y + face.Metrics().Ascent.Ceil() + i*lineHeight

		if style.Border {
			for dx := -borderWidth; dx <= borderWidth; dx++ {
				for dy := -borderWidth; dy <= borderWidth; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					drawString(dst, x+dx, baseline+dy, line, outlineColor, face)
				}
			}
		}
		drawString(dst, x, baseline, line, textColor, face)
	}
}

func drawString(dst draw.Image, x, y int, s string, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y),
		},
	}
	d.DrawString(s)
}
