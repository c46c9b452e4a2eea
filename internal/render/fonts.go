package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fontFamily struct {
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

var (
	familyOnce sync.Once
	family     fontFamily
	familyErr  error
)

// loadFamily parses the embedded Go fonts once per process.
func loadFamily() (fontFamily, error) {
	familyOnce.Do(func() {
		var err error
		if family.regular, err = truetype.Parse(goregular.TTF); err != nil {
			familyErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		if family.bold, err = truetype.Parse(gobold.TTF); err != nil {
			familyErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		if family.italic, err = truetype.Parse(goitalic.TTF); err != nil {
			familyErr = fmt.Errorf("parse italic font: %w", err)
		}
	})
	return family, familyErr
}

// faceSet holds the faces of one rasterization, sized in device pixels.
type faceSet struct {
	title   font.Face
	heading font.Face
	body    font.Face
	italic  font.Face
}

func newFaceSet(f fontFamily, bodyPx float64) faceSet {
	face := func(tt *truetype.Font, size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return faceSet{
		title:   face(f.bold, bodyPx*1.75),
		heading: face(f.bold, bodyPx*1.3),
		body:    face(f.regular, bodyPx),
		italic:  face(f.italic, bodyPx),
	}
}

func (fs faceSet) Close() {
	for _, f := range []font.Face{fs.title, fs.heading, fs.body, fs.italic} {
		if f != nil {
			_ = f.Close()
		}
	}
}
