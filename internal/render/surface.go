package render

import (
	"image"
	"image/png"
	"io"
)

// Surface is the staging raster of one export. It must be released once the
// export is done with it, on success and on failure alike.
type Surface struct {
	img       image.Image
	released  bool
	onRelease func()
}

// NewSurface wraps img. onRelease, if non-nil, runs once on Release.
func NewSurface(img image.Image, onRelease func()) *Surface {
	return &Surface{img: img, onRelease: onRelease}
}

// Bounds returns the raster bounds, or the zero rectangle after release.
func (s *Surface) Bounds() image.Rectangle {
	if s == nil || s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// EncodePNG writes the raster as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s == nil || s.released || s.img == nil {
		return ErrSurfaceReleased
	}
	return png.Encode(w, s.img)
}

// Release drops the raster. Safe to call more than once.
func (s *Surface) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.img = nil
	if s.onRelease != nil {
		s.onRelease()
	}
}

// Released reports whether Release has run.
func (s *Surface) Released() bool {
	return s != nil && s.released
}
