// Package normalize reconciles the content-shaping result against the
// submitted request so the renderer always receives a complete document.
package normalize

import (
	"strings"

	"github.com/abhisek/papersmith/internal/paper"
)

// Report records which document fields fell back to the request.
type Report struct {
	Kind             paper.ResultKind
	TitleFallback    bool
	SectionsFallback bool
}

// Fallback reports whether any field came from the request rather than the
// external result.
func (r Report) Fallback() bool {
	return r.TitleFallback || r.SectionsFallback
}

// Normalize builds a Document from the request and the external result.
// It never fails and never touches its inputs.
func Normalize(req paper.Request, result paper.Result) paper.Document {
	doc, _ := NormalizeWithReport(req, result)
	return doc
}

// NormalizeWithReport is Normalize plus a description of the fallbacks taken.
func NormalizeWithReport(req paper.Request, result paper.Result) (paper.Document, Report) {
	doc := paper.Document{
		Title:        req.Title,
		Instructions: req.Instructions,
		Sections:     paper.CloneSections(req.Sections),
	}
	rep := Report{Kind: result.Kind()}

	switch result.Kind() {
	case paper.KindStructured:
		if t := strings.TrimSpace(result.Title()); t != "" {
			doc.Title = t
		} else {
			rep.TitleFallback = true
		}
		if secs := result.Sections(); len(secs) > 0 {
			doc.Sections = secs
		} else {
			rep.SectionsFallback = true
		}
	case paper.KindFreeText, paper.KindMissing:
		// Free text carries no structure to reconcile; the request stands.
		rep.TitleFallback = true
		rep.SectionsFallback = true
	}

	return doc, rep
}
