package render

import (
	"context"
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planBlocks(t *testing.T, blocks []Block) canvasPlan {
	t.Helper()
	fam, err := loadFamily()
	require.NoError(t, err)

	r := NewGGRasterizer()
	faces := newFaceSet(fam, float64(testFontSize)*r.Scale)
	t.Cleanup(faces.Close)

	p, err := r.plan(context.Background(), blocks, faces, float64(testFontSize)*r.Scale, r.Scale)
	require.NoError(t, err)
	return p
}

const testFontSize = 12

func TestPlan_LinesFitCanvas(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"long token", "1. " + strings.Repeat("x", 300)},
		{"url", "1. See https://example.com/" + strings.Repeat("path/", 80)},
		{"cjk", "1. " + strings.Repeat("化学反应速率", 45)},
		{"mixed", "1. Name the compound " + strings.Repeat("methyl", 60) + " and explain."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planBlocks(t, []Block{
				{Kind: BlockTitle, Text: strings.Repeat("T", 200)},
				{Kind: BlockQuestion, Text: tt.text},
			})

			measure := gg.NewContext(1, 1)
			var joined strings.Builder
			for _, ln := range p.lines {
				measure.SetFontFace(ln.face)
				w, _ := measure.MeasureString(ln.text)
				left := ln.x - ln.ax*w
				assert.GreaterOrEqual(t, left, 0.0, "line %q starts off canvas", ln.text)
				assert.LessOrEqual(t, left+w, p.width, "line %q overflows canvas", ln.text)
				if ln.face == p.lines[len(p.lines)-1].face && ln.ax == 0 {
					joined.WriteString(ln.text)
				}
			}
			assert.Greater(t, len(p.lines), 2, "long text must wrap")
			assert.Equal(t, strings.ReplaceAll(tt.text, " ", ""), strings.ReplaceAll(joined.String(), " ", ""),
				"no text may be lost when wrapping")
		})
	}
}

func TestHardWrap_KeepsEveryRune(t *testing.T) {
	fam, err := loadFamily()
	require.NoError(t, err)
	faces := newFaceSet(fam, 24)
	defer faces.Close()

	measure := gg.NewContext(1, 1)
	measure.SetFontFace(faces.body)

	line := strings.Repeat("数学", 100)
	parts := hardWrap(measure, line, 200)
	require.Greater(t, len(parts), 1)
	assert.Equal(t, line, strings.Join(parts, ""))
	for _, part := range parts {
		w, _ := measure.MeasureString(part)
		assert.LessOrEqual(t, w, 200.0)
	}
}
