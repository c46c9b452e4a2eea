// Package pipeline runs one paper submission end to end: validate, shape,
// normalize, export, persist.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/papersmith/internal/logging"
	"github.com/abhisek/papersmith/internal/normalize"
	"github.com/abhisek/papersmith/internal/notify"
	"github.com/abhisek/papersmith/internal/paper"
	"github.com/abhisek/papersmith/internal/render"
	"github.com/abhisek/papersmith/internal/store"
)

// DateLayout is the display format of SavedTest.Date.
const DateLayout = "Jan 2, 2006"

// ErrBusy is returned when a submission is already in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Shaper is the content-shaping call. *shaper.Shaper and shaper.Func satisfy
// it.
type Shaper interface {
	Shape(ctx context.Context, req paper.Request) (paper.Result, error)
}

// Outcome describes a completed submission.
type Outcome struct {
	Document paper.Document
	File     *render.File
	// Path is where the exported file was written.
	Path string
	// PreviewPath is set when an HTML preview was written alongside.
	PreviewPath string
	// LayoutText is the free-text layout returned by the shaping call, if
	// any. It is not rendered; LayoutPath is where it was saved.
	LayoutText string
	LayoutPath string
	// Record is nil when appending to the saved list failed.
	Record *store.SavedTest
	// Fallback is true when any document field came from the request
	// instead of the shaping result.
	Fallback bool
}

// Pipeline admits one submission at a time.
type Pipeline struct {
	Shaper   Shaper // nil skips the shaping call
	Engine   render.Engine
	Notifier notify.Notifier
	Tests    store.SavedTestRepo
	OutDir   string
	Log      *logging.Logger

	// IncludeAnswers adds an answer key when the document carries answers.
	IncludeAnswers bool
	// Preview, when set, also writes an HTML preview next to the PDF.
	Preview *render.HTMLRenderer

	Now   func() time.Time
	NewID func() (string, error)

	mu sync.Mutex
}

// Submit runs every stage for req. Validation and export failures are
// returned; a failed shaping call or a failed record append is reported
// through the Notifier and the submission continues.
func (p *Pipeline) Submit(ctx context.Context, req paper.Request) (*Outcome, error) {
	if !p.mu.TryLock() {
		return nil, ErrBusy
	}
	defer p.mu.Unlock()

	log := logging.OrNop(p.Log).With("title", req.Title)
	n := p.notifier()

	if verr := req.Validate(); verr != nil {
		n.Notify(notify.Notification{Level: notify.LevelError, Title: "Invalid Test", Message: verr.Message})
		return nil, verr
	}

	result := p.shape(ctx, req, log, n)

	doc, rep := normalize.NormalizeWithReport(req, result)
	if result.Kind() == paper.KindStructured && rep.Fallback() {
		log.Debug("shaping result incomplete, using request fields",
			"title_fallback", rep.TitleFallback,
			"sections_fallback", rep.SectionsFallback,
		)
	}

	layout := render.LayoutFor(req)
	layout.IncludeAnswers = p.IncludeAnswers

	file, err := p.Engine.Export(ctx, doc, layout)
	if err != nil {
		return nil, p.exportFailed(err, render.StageAssemble, log, n)
	}

	path, err := writeAtomic(p.outDir(), file.Name, file.Data)
	if err != nil {
		return nil, p.exportFailed(err, render.StageWrite, log, n)
	}
	log.Info("paper exported", "path", path, "pages", file.Pages, "bytes", len(file.Data))

	out := &Outcome{Document: doc, File: file, Path: path, Fallback: rep.Fallback()}

	if p.Preview != nil {
		out.PreviewPath = p.writePreview(doc, layout, log, n)
	}
	if result.Kind() == paper.KindFreeText {
		out.LayoutText = result.Text()
		out.LayoutPath = p.writeSidecar(render.LayoutFileName(doc.Title), []byte(out.LayoutText), "Layout Not Saved", log, n)
	}

	out.Record = p.appendRecord(ctx, doc, file, log, n)

	n.Notify(notify.Notification{
		Level:   notify.LevelSuccess,
		Title:   "Test Paper Created",
		Message: fmt.Sprintf("%s saved to %s", file.Name, path),
	})
	return out, nil
}

func (p *Pipeline) shape(ctx context.Context, req paper.Request, log *logging.Logger, n notify.Notifier) paper.Result {
	if p.Shaper == nil {
		log.Info("no content shaper configured, using request as entered")
		n.Notify(notify.Notification{
			Level:   notify.LevelInfo,
			Title:   "Formatting Skipped",
			Message: "No LLM provider configured; your questions are used as entered.",
		})
		return paper.Missing()
	}

	result, err := p.Shaper.Shape(ctx, req)
	if err != nil {
		log.Warn("content shaping failed", "error", err)
		n.Notify(notify.Notification{
			Level:   notify.LevelWarning,
			Title:   "Test Generation Error",
			Message: "Could not format the test; your questions are used as entered.",
		})
		return paper.Missing()
	}
	log.Debug("content shaped", "kind", result.Kind().String())
	return result
}

func (p *Pipeline) exportFailed(err error, stage string, log *logging.Logger, n notify.Notifier) error {
	var ee *render.ExportError
	if !errors.As(err, &ee) {
		ee = &render.ExportError{Stage: stage, Err: err}
	}
	log.Error("export failed", "stage", ee.Stage, "error", ee.Err)
	n.Notify(notify.Notification{
		Level:   notify.LevelError,
		Title:   "PDF Generation Error",
		Message: ee.Error(),
	})
	return ee
}

func (p *Pipeline) writePreview(doc paper.Document, layout render.Layout, log *logging.Logger, n notify.Notifier) string {
	html, err := p.Preview.Render(doc, layout)
	if err != nil {
		log.Warn("html preview not rendered", "error", err)
		n.Notify(notify.Notification{Level: notify.LevelWarning, Title: "Preview Not Saved", Message: err.Error()})
		return ""
	}
	return p.writeSidecar(render.HTMLFileName(doc.Title), html, "Preview Not Saved", log, n)
}

// writeSidecar saves an optional file next to the PDF. Failure is a warning.
func (p *Pipeline) writeSidecar(name string, data []byte, failTitle string, log *logging.Logger, n notify.Notifier) string {
	path, err := writeAtomic(p.outDir(), name, data)
	if err != nil {
		log.Warn("sidecar file not written", "name", name, "error", err)
		n.Notify(notify.Notification{Level: notify.LevelWarning, Title: failTitle, Message: err.Error()})
		return ""
	}
	return path
}

func (p *Pipeline) appendRecord(ctx context.Context, doc paper.Document, file *render.File, log *logging.Logger, n notify.Notifier) *store.SavedTest {
	if p.Tests == nil {
		return nil
	}

	id, err := p.newID()
	if err == nil {
		now := p.now()
		rec := store.SavedTest{
			ID:        id,
			Title:     doc.Title,
			Date:      now.Format(DateLayout),
			FileName:  file.Name,
			CreatedAt: now,
		}
		// The file is already on disk; record it even if ctx is done.
		if err = p.Tests.Append(context.WithoutCancel(ctx), rec); err == nil {
			return &rec
		}
	}

	log.Warn("saved test record not appended", "error", err)
	n.Notify(notify.Notification{
		Level:   notify.LevelWarning,
		Title:   "Not Added to Saved Tests",
		Message: "The PDF was exported but could not be added to your saved tests.",
	})
	return nil
}

func (p *Pipeline) notifier() notify.Notifier {
	if p.Notifier == nil {
		return notify.Nop{}
	}
	return p.Notifier
}

func (p *Pipeline) outDir() string {
	if p.OutDir == "" {
		return "."
	}
	return p.OutDir
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Pipeline) newID() (string, error) {
	if p.NewID != nil {
		return p.NewID()
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
