package render

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/abhisek/papersmith/internal/paper"
)

const previewSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
<style>
  @page { size: A4 portrait; margin: 0; }
  body { margin: 0; font-family: "Go", sans-serif; font-size: {{ font_size }}px; }
  .paper { width: 210mm; padding: 20px; box-sizing: border-box; }
  h1 { text-align: center; font-size: 1.75em; margin: 0 0 .4em; }
  .instructions { text-align: center; font-style: italic; margin-bottom: .8em; white-space: pre-wrap; }
  .identity p { margin: .2em 0; }
  h2 { font-size: 1.3em; margin: .8em 0 .3em; }
  ol { margin: 0; padding-left: 1em; list-style: none; }
  li { margin: .3em 0; white-space: pre-wrap; }
  .answers h1 { font-size: 1.3em; }
</style>
</head>
<body>
<div class="paper">
  <h1>{{ title }}</h1>
  {% if instructions %}<div class="instructions">{{ instructions }}</div>{% endif %}
  <div class="identity">{% for field in identity %}<p>{{ field }}</p>{% endfor %}</div>
  <hr>
  {% for section in sections %}
  <h2>{{ section.title }}</h2>
  <ol>{% for q in section.questions %}<li>{{ q }}</li>{% endfor %}</ol>
  {% endfor %}
  {% if answers %}
  <hr>
  <div class="answers">
    <h1>{{ answer_heading }}</h1>
    {% for section in answers %}
    <h2>{{ section.title }}</h2>
    <ol>{% for a in section.questions %}<li>{{ a }}</li>{% endfor %}</ol>
    {% endfor %}
  </div>
  {% endif %}
</div>
</body>
</html>
`

var previewTemplate = pongo2.Must(pongo2.FromString(previewSource))

// HTMLRenderer renders a document as a printable HTML page that mirrors the
// raster layout.
type HTMLRenderer struct{}

// Render returns the HTML bytes for doc.
func (HTMLRenderer) Render(doc paper.Document, layout Layout) ([]byte, error) {
	sections := make([]map[string]any, 0, len(doc.Sections))
	var answers []map[string]any
	for _, s := range doc.Sections {
		sections = append(sections, map[string]any{
			"title":     clean(s.Title),
			"questions": numberAll(s.Questions),
		})
		if layout.IncludeAnswers && len(s.Answers) > 0 {
			answers = append(answers, map[string]any{
				"title":     clean(s.Title),
				"questions": numberAll(s.Answers),
			})
		}
	}

	out, err := previewTemplate.ExecuteBytes(pongo2.Context{
		"title":          clean(doc.Title),
		"instructions":   clean(doc.Instructions),
		"font_size":      layout.fontSize(),
		"identity":       []string{IdentityName, IdentityRoll},
		"sections":       sections,
		"answers":        answers,
		"answer_heading": AnswerKey,
	})
	if err != nil {
		return nil, fmt.Errorf("render html preview: %w", err)
	}
	return out, nil
}

// HTMLFileName is the preview counterpart of FileName.
func HTMLFileName(title string) string {
	return BaseName(title) + ".html"
}

// LayoutFileName names the free-text layout saved next to the PDF.
func LayoutFileName(title string) string {
	return BaseName(title) + ".layout.txt"
}

func numberAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = numbered(i, s)
	}
	return out
}
