package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"coursegen/internal/coursemap"
	"coursegen/internal/parser"
	"coursegen/internal/syllabus"
)

// Worker processes a single syllabus job end to end: parse, extract,
// generate, export. Topics within a job are strictly sequential; the
// builder owns per-topic generation and persistence.
type Worker struct {
	builder *coursemap.Builder
	courses *coursemap.Map
	log     *slog.Logger

	exportJS   string
	exportJSON string

	pdfFallback bool
}

func NewWorker(builder *coursemap.Builder, courses *coursemap.Map, log *slog.Logger, exportJS, exportJSON string, pdfFallback bool) *Worker {
	return &Worker{
		builder:     builder,
		courses:     courses,
		log:         log,
		exportJS:    exportJS,
		exportJSON:  exportJSON,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	data := job.FileData()
	doc, err := p.Parse(bytes.NewReader(data), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.ContentHash = ContentHashHex(data)
	log.Info("parsed document", "rows", len(doc.Rows))

	// Phase 2: Extract syllabus structure
	job.SetStatus(StatusExtracting, "extracting")
	syl := syllabus.Extract(doc)
	if len(syl.Units) == 0 {
		// Not an error: the document just has no recognizable unit table.
		log.Warn("no syllabus units found")
		job.SetStatus(StatusNoSyllabus, "extracting")
		return
	}

	totalTopics := 0
	for _, u := range syl.Units {
		totalTopics += len(u.Topics)
	}
	job.SetTotals(len(syl.Units), totalTopics)
	log.Info("extracted syllabus", "units", len(syl.Units), "topics", totalTopics)

	// Phase 3: Generate topic content, one unit at a time.
	job.SetStatus(StatusGenerating, "generating")
	failedTopics := 0
	for _, unit := range syl.Units {
		if ctx.Err() != nil {
			job.AddError("cancelled")
			job.SetStatus(StatusFailed, "generating")
			return
		}
		ch := w.builder.BuildChapter(ctx, job.Class, job.Subject, unit)
		generated, failed := 0, 0
		for _, t := range ch.Topics {
			if t.Failed {
				failed++
			} else {
				generated++
			}
		}
		failedTopics += failed
		w.courses.Append(job.Class, job.Subject, ch)
		job.IncrUnitsProcessed()
		job.AddTopicResults(generated, failed)
		log.Info("unit complete", "unit", unit.Number, "generated", generated, "failed", failed)
	}

	// Phase 4: Export the aggregate after every document.
	job.SetStatus(StatusExporting, "exporting")
	if w.exportJS != "" {
		if err := coursemap.ExportJS(w.courses, w.exportJS); err != nil {
			log.Error("js export failed", "error", err)
			job.AddError(fmt.Sprintf("export: %s", err))
		}
	}
	if w.exportJSON != "" {
		if err := coursemap.ExportJSON(w.courses, w.exportJSON); err != nil {
			log.Error("json export failed", "error", err)
			job.AddError(fmt.Sprintf("export: %s", err))
		}
	}

	if failedTopics > 0 {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("job complete", "status", job.Status, "failed_topics", failedTopics)
}
