package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"coursegen/internal/config"
	"coursegen/internal/contentstore"
	"coursegen/internal/coursemap"
	"coursegen/internal/generate"
	"coursegen/internal/parser"
	"coursegen/internal/syllabus"
)

// Batch mode: walk a directory of syllabus documents, extract and generate
// everything sequentially, write the course map exports, exit.
func main() {
	var (
		inputDir = flag.String("input", "syllabi", "directory of syllabus documents")
		class    = flag.String("class", "", "class label for all documents (required)")
		subject  = flag.String("subject", "", "subject label for all documents (required)")
		jsOut    = flag.String("js", "courseDataMap.js", "course map JS export path")
		jsonOut  = flag.String("json", "", "optional course map JSON export path")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if *class == "" || *subject == "" {
		fmt.Fprintln(os.Stderr, "both -class and -subject are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	entries, err := os.ReadDir(*inputDir)
	if err != nil {
		log.Error("cannot read input directory", "dir", *inputDir, "error", err)
		os.Exit(1)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	if len(files) == 0 {
		log.Error("no supported documents found", "dir", *inputDir)
		os.Exit(1)
	}

	store, err := contentstore.New(cfg.ContentDir, cfg.ErrorDir)
	if err != nil {
		log.Error("failed to create content store", "error", err)
		os.Exit(1)
	}
	client := generate.NewClient(cfg.OllamaURL, cfg.OllamaModel, cfg.OllamaTimeout)
	defer client.Close()

	builder := coursemap.NewBuilder(client, store, log)
	courses := coursemap.NewMap()
	ctx := context.Background()

	exitCode := 0
	for _, name := range files {
		path := filepath.Join(*inputDir, name)
		log := log.With("file", name)

		p, err := parser.ForFile(name)
		if err != nil {
			log.Error("unsupported format", "error", err)
			exitCode = 1
			continue
		}
		if pdf, ok := p.(*parser.PDFParser); ok {
			pdf.FallbackPdftotext = cfg.PDFFallbackPdftotext
		}

		f, err := os.Open(path)
		if err != nil {
			log.Error("cannot open file", "error", err)
			exitCode = 1
			continue
		}
		doc, err := p.Parse(f, name)
		f.Close()
		if err != nil {
			log.Error("parse failed", "error", err)
			exitCode = 1
			continue
		}

		syl := syllabus.Extract(doc)
		if len(syl.Units) == 0 {
			log.Warn("no syllabus units found, skipping")
			continue
		}
		log.Info("extracted syllabus", "units", len(syl.Units))

		for _, unit := range syl.Units {
			ch := builder.BuildChapter(ctx, *class, *subject, unit)
			courses.Append(*class, *subject, ch)
			log.Info("unit complete", "unit", unit.Number, "topics", len(ch.Topics))
		}
	}

	if err := coursemap.ExportJS(courses, *jsOut); err != nil {
		log.Error("js export failed", "error", err)
		os.Exit(1)
	}
	if *jsonOut != "" {
		if err := coursemap.ExportJSON(courses, *jsonOut); err != nil {
			log.Error("json export failed", "error", err)
			os.Exit(1)
		}
	}

	log.Info("done", "documents", len(files), "export", *jsOut)
	os.Exit(exitCode)
}
