package render

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas defaults, in CSS pixels before oversampling.
const (
	DefaultScale     = 2.0
	DefaultPadding   = 20.0
	DefaultMaxPixels = 120_000_000
	lineSpacing      = 1.4
)

// DefaultCanvasWidth is 210mm in CSS pixels.
var DefaultCanvasWidth = math.Round(PageWidthMM * cssPxPerMM)

// RasterOptions controls one rasterization.
type RasterOptions struct {
	FontSize int
}

// Rasterizer draws composed blocks onto a single tall Surface. On error it
// must not leave a Surface behind.
type Rasterizer interface {
	Rasterize(ctx context.Context, blocks []Block, opts RasterOptions) (*Surface, error)
}

// GGRasterizer rasterizes with fogleman/gg using the embedded Go fonts.
type GGRasterizer struct {
	// Scale is the oversampling factor applied to every dimension.
	Scale float64
	// Width is the logical canvas width in CSS pixels.
	Width float64
	// Padding is the logical inset on every side.
	Padding float64
	// MaxPixels caps the raster area.
	MaxPixels int64
}

// NewGGRasterizer returns a GGRasterizer with default settings.
func NewGGRasterizer() *GGRasterizer {
	return &GGRasterizer{
		Scale:     DefaultScale,
		Width:     DefaultCanvasWidth,
		Padding:   DefaultPadding,
		MaxPixels: DefaultMaxPixels,
	}
}

type blockStyle struct {
	face   font.Face
	center bool
	indent float64 // in body-size units
	before float64 // in body-size units
	after  float64
}

type placedLine struct {
	text string
	face font.Face
	x, y float64
	ax   float64
}

type canvasPlan struct {
	width, height float64
	lines         []placedLine
	rules         []float64
}

func (r *GGRasterizer) Rasterize(ctx context.Context, blocks []Block, opts RasterOptions) (*Surface, error) {
	fam, err := loadFamily()
	if err != nil {
		return nil, err
	}

	scale := orDefault(r.Scale, DefaultScale)
	fontSize := Layout{FontSize: opts.FontSize}.fontSize()
	faces := newFaceSet(fam, float64(fontSize)*scale)
	defer faces.Close()

	plan, err := r.plan(ctx, blocks, faces, float64(fontSize)*scale, scale)
	if err != nil {
		return nil, err
	}

	w, h := int(math.Ceil(plan.width)), int(math.Ceil(plan.height))
	maxPixels := r.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if int64(w)*int64(h) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrRasterTooLarge, w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	for _, ln := range plan.lines {
		dc.SetFontFace(ln.face)
		dc.DrawStringAnchored(ln.text, ln.x, ln.y, ln.ax, 1)
	}

	pad := orDefault(r.Padding, DefaultPadding) * scale
	dc.SetLineWidth(scale)
	for _, y := range plan.rules {
		dc.DrawLine(pad, y, plan.width-pad, y)
		dc.Stroke()
	}

	return NewSurface(dc.Image(), nil), nil
}

// plan measures and positions every line without drawing, so the canvas can
// be allocated at its final height.
func (r *GGRasterizer) plan(ctx context.Context, blocks []Block, faces faceSet, body, scale float64) (canvasPlan, error) {
	width := orDefault(r.Width, DefaultCanvasWidth) * scale
	pad := orDefault(r.Padding, DefaultPadding) * scale
	contentW := width - 2*pad

	measure := gg.NewContext(1, 1)
	p := canvasPlan{width: width}
	y := pad

	for _, b := range blocks {
		if err := ctx.Err(); err != nil {
			return canvasPlan{}, err
		}

		st := styleFor(b.Kind, faces)
		y += st.before * body

		if b.Kind == BlockRule {
			p.rules = append(p.rules, y)
			y += scale + st.after*body
			continue
		}

		measure.SetFontFace(st.face)
		lineH := measure.FontHeight() * lineSpacing
		indent := st.indent * body

		for _, para := range strings.Split(b.Text, "\n") {
			wrapped := wrapLine(measure, para, contentW-indent)
			if len(wrapped) == 0 {
				wrapped = []string{""}
			}
			for _, text := range wrapped {
				ln := placedLine{text: text, face: st.face, x: pad + indent, y: y}
				if st.center {
					ln.x, ln.ax = width/2, 0.5
				}
				p.lines = append(p.lines, ln)
				y += lineH
			}
		}
		y += st.after * body
	}

	p.height = y + pad
	return p, nil
}

// wrapLine word-wraps text to maxW and then breaks any line that is still
// too wide, such as a long URL or unspaced CJK text, at rune boundaries.
func wrapLine(measure *gg.Context, text string, maxW float64) []string {
	var out []string
	for _, line := range measure.WordWrap(text, maxW) {
		if w, _ := measure.MeasureString(line); w <= maxW {
			out = append(out, line)
			continue
		}
		out = append(out, hardWrap(measure, line, maxW)...)
	}
	return out
}

func hardWrap(measure *gg.Context, line string, maxW float64) []string {
	var out []string
	runes := []rune(line)
	for len(runes) > 0 {
		// Longest prefix that fits, at least one rune.
		lo, hi := 1, len(runes)
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if w, _ := measure.MeasureString(string(runes[:mid])); w <= maxW {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		n := lo
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return out
}

func styleFor(kind BlockKind, faces faceSet) blockStyle {
	switch kind {
	case BlockTitle:
		return blockStyle{face: faces.title, center: true, after: 0.6}
	case BlockInstructions:
		return blockStyle{face: faces.italic, center: true, after: 0.8}
	case BlockIdentity:
		return blockStyle{face: faces.body, after: 0.4}
	case BlockRule:
		return blockStyle{before: 0.4, after: 0.8}
	case BlockSectionHeading:
		return blockStyle{face: faces.heading, before: 0.6, after: 0.4}
	case BlockAnswerHeading:
		return blockStyle{face: faces.heading, center: true, after: 0.4}
	case BlockQuestion, BlockAnswer:
		return blockStyle{face: faces.body, indent: 1, after: 0.3}
	default:
		return blockStyle{face: faces.body}
	}
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
