package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const canvasImageName = "canvas"

// Meta is document metadata written into the assembled file.
type Meta struct {
	Title   string
	Created time.Time
}

// Assembler turns a paginated raster into file bytes.
type Assembler interface {
	Assemble(ctx context.Context, surface *Surface, plan Plan, meta Meta) ([]byte, error)
}

// PDFAssembler assembles A4 portrait PDFs with gofpdf. The raster is
// embedded once and referenced from every page.
type PDFAssembler struct {
	// Creator is written to the PDF info dictionary.
	Creator string
}

func (a PDFAssembler) Assemble(ctx context.Context, surface *Surface, plan Plan, meta Meta) ([]byte, error) {
	if len(plan.Pages) == 0 {
		return nil, fmt.Errorf("empty page plan")
	}

	var img bytes.Buffer
	if err := surface.EncodePNG(&img); err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
	}
	pdf.SetTitle(meta.Title, true)
	if a.Creator != "" {
		pdf.SetCreator(a.Creator, true)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(canvasImageName, opts, &img)

	for _, p := range plan.Pages {
		pdf.AddPage()
		pdf.ImageOptions(canvasImageName, 0, p.OffsetY, plan.ImageWidth, plan.ImageHeight, false, opts, 0, "")
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}
