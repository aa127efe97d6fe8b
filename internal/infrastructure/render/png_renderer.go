package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// Text is laid out on a canvas this many times smaller than the output
	// and scaled up, so the 7x13 bitmap face stays readable.
	scale = 2

	marginX     = 15
	indentX     = 25
	linesY      = 92
	lineSpacing = 20
	footerMinY  = 210
)

// PNGRenderer draws the summary artifact as a fixed size PNG.
type PNGRenderer struct {
	Width  int
	Height int
	face   font.Face
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		face:   basicfont.Face7x13,
	}
}

// Render draws s and writes it to path, replacing any previous file. The
// image is written to a temporary file first and renamed into place.
func (r *PNGRenderer) Render(path string, s domain.SummaryImage) error {
	img := r.draw(s)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".summary-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temporary artifact: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}
	return nil
}

// footerY keeps the footer at footerMinY unless the ranked lines reach it,
// in which case it goes one line below the last of them.
func footerY(lines int) int {
	return max(footerMinY, linesY+lines*lineSpacing)
}

func (r *PNGRenderer) draw(s domain.SummaryImage) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, r.Width/scale, r.Height/scale))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
	}
	text := func(x, y int, str string) {
		d.Dot = fixed.P(x, y)
		d.DrawString(str)
	}

	text(marginX, 28, s.Title)
	text(marginX, 52, fmt.Sprintf("Total Countries: %d", s.TotalCountries))
	text(marginX, 72, s.Heading)

	y := linesY
	for _, line := range s.Lines {
		text(indentX, y, line)
		y += lineSpacing
	}

	text(marginX, footerY(len(s.Lines)), "Last Refreshed: "+s.LastRefreshedAt.UTC().Format(time.RFC3339))

	out := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out
}
