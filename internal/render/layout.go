package render

import "github.com/abhisek/papersmith/internal/paper"

// Fixed output page: ISO A4 portrait, millimetres.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// cssPxPerMM is the CSS reference pixel density (96 px per inch).
const cssPxPerMM = 96.0 / 25.4

// Unit names the unit of Layout.PageWidth and Layout.PageHeight.
type Unit string

const (
	UnitPx Unit = "px"
	UnitCm Unit = "cm"
)

// Layout carries the layout parameters of a submission. Output pages are
// always A4; the page dimensions travel with the layout for the
// content-shaping call and for the HTML preview.
type Layout struct {
	FontSize   int
	PageWidth  float64
	PageHeight float64
	Unit       Unit

	// IncludeAnswers appends an answer key when the document carries answers.
	IncludeAnswers bool
}

// LayoutFor derives a Layout from a request. Physical dimensions win when
// both are present.
func LayoutFor(req paper.Request) Layout {
	l := Layout{
		FontSize:   req.FontSize,
		PageWidth:  float64(req.PageWidthPx),
		PageHeight: float64(req.PageHeightPx),
		Unit:       UnitPx,
	}
	if req.PageWidthCm != nil && req.PageHeightCm != nil {
		l.PageWidth = *req.PageWidthCm
		l.PageHeight = *req.PageHeightCm
		l.Unit = UnitCm
	}
	return l
}

func (l Layout) fontSize() int {
	if l.FontSize < paper.MinFontSize || l.FontSize > paper.MaxFontSize {
		return paper.DefaultFont
	}
	return l.FontSize
}
