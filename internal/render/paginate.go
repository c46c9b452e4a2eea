package render

import "math"

// Placement positions the full raster on one output page.
type Placement struct {
	// Index is the 0-based page number.
	Index int
	// OffsetY is the vertical offset of the raster's top edge on this page.
	// Always -PageHeight * Index.
	OffsetY float64
	// Visible is the height of the raster band this page reveals.
	Visible float64
}

// Plan is the page layout of a single raster.
type Plan struct {
	ImageWidth  float64
	ImageHeight float64
	Pages       []Placement
}

// ScaledHeight returns the raster's height once its width is scaled to
// pageWidth, preserving the aspect ratio.
func ScaledHeight(rasterWidth, rasterHeight int, pageWidth float64) float64 {
	if rasterWidth <= 0 || rasterHeight <= 0 {
		return 0
	}
	ratio := float64(rasterWidth) / float64(rasterHeight)
	return pageWidth / ratio
}

// Paginate splits an image of imgHeight into consecutive bands of
// pageHeight. The first page shows the image at offset 0; each following
// page shifts it up by one more page height. At least one page is returned,
// and the Visible heights sum to imgHeight.
func Paginate(imgHeight, pageHeight float64) []Placement {
	if math.IsNaN(imgHeight) || math.IsInf(imgHeight, 0) || imgHeight < 0 {
		imgHeight = 0
	}
	if math.IsNaN(pageHeight) || math.IsInf(pageHeight, 0) || pageHeight <= 0 {
		return []Placement{{Index: 0, OffsetY: 0, Visible: imgHeight}}
	}

	pages := []Placement{{Index: 0, OffsetY: 0, Visible: math.Min(pageHeight, imgHeight)}}
	remaining := imgHeight - pageHeight
	for i := 1; remaining > 0; i++ {
		pages = append(pages, Placement{
			Index:   i,
			OffsetY: -pageHeight * float64(i),
			Visible: math.Min(pageHeight, remaining),
		})
		remaining -= pageHeight
	}
	return pages
}

// PlanPages lays a raster of the given pixel size onto A4 pages.
func PlanPages(rasterWidth, rasterHeight int) Plan {
	h := ScaledHeight(rasterWidth, rasterHeight, PageWidthMM)
	return Plan{
		ImageWidth:  PageWidthMM,
		ImageHeight: h,
		Pages:       Paginate(h, PageHeightMM),
	}
}
