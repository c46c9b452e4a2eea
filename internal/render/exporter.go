package render

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/papersmith/internal/logging"
	"github.com/abhisek/papersmith/internal/paper"
)

// ContentTypePDF is the MIME type of exported papers.
const ContentTypePDF = "application/pdf"

// File is an exported document ready to be persisted.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	// Pages is the page count, or 0 when the engine cannot tell.
	Pages int
}

// Engine exports a document to a file.
type Engine interface {
	Export(ctx context.Context, doc paper.Document, layout Layout) (*File, error)
}

// Exporter is the raster engine: compose, rasterize, paginate, assemble.
type Exporter struct {
	Rasterizer Rasterizer
	Assembler  Assembler
	Now        func() time.Time
	Log        *logging.Logger
}

// NewExporter returns an Exporter wired with the gg rasterizer and the
// gofpdf assembler.
func NewExporter(log *logging.Logger) *Exporter {
	return &Exporter{
		Rasterizer: NewGGRasterizer(),
		Assembler:  PDFAssembler{Creator: "papersmith"},
		Now:        time.Now,
		Log:        logging.OrNop(log),
	}
}

// Export renders doc into a PDF. Any failure is returned as *ExportError and
// the staging surface is released before Export returns.
func (e *Exporter) Export(ctx context.Context, doc paper.Document, layout Layout) (*File, error) {
	log := logging.OrNop(e.Log)

	blocks := Compose(doc, layout)
	if err := ctx.Err(); err != nil {
		return nil, exportErr(StageCompose, err)
	}

	surface, err := e.Rasterizer.Rasterize(ctx, blocks, RasterOptions{FontSize: layout.FontSize})
	if err != nil {
		return nil, exportErr(StageRasterize, err)
	}
	defer surface.Release()

	b := surface.Bounds()
	if b.Empty() {
		return nil, exportErr(StagePaginate, fmt.Errorf("empty raster %dx%d", b.Dx(), b.Dy()))
	}
	plan := PlanPages(b.Dx(), b.Dy())
	log.Debug("paginated raster",
		"raster_width", b.Dx(),
		"raster_height", b.Dy(),
		"image_height_mm", plan.ImageHeight,
		"pages", len(plan.Pages),
	)

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	data, err := e.Assembler.Assemble(ctx, surface, plan, Meta{Title: doc.Title, Created: now()})
	if err != nil {
		return nil, exportErr(StageAssemble, err)
	}

	return &File{
		Name:        FileName(doc.Title),
		ContentType: ContentTypePDF,
		Data:        data,
		Pages:       len(plan.Pages),
	}, nil
}
