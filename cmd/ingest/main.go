package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/ingestion"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
)

var supportedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
}

func main() {
	os.Exit(run())
}

func run() int {
	dir := flag.String("dir", ".", "Directory holding statement files (.pdf, .txt)")
	exclude := flag.String("exclude", "", "Comma-separated exclusion terms, overrides the configured defaults")
	export := flag.String("export", "", "Write the records ingested by this run to a .csv or .xlsx file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var exportFormat report.Format
	if *export != "" {
		exportFormat, err = report.ParseFormat(strings.TrimPrefix(filepath.Ext(*export), "."))
		if err != nil {
			log.Fatalf("Unsupported export file %s: %v", *export, err)
		}
	}

	docs, err := readDocuments(*dir)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *dir, err)
	}
	if len(docs) == 0 {
		fmt.Printf("No statement files found in %s\n", *dir)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	opts := ingestion.Options{}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "exclude" {
			opts.ExcludeTerms = splitTerms(*exclude)
		}
	})

	batch := app.Ingestion.IngestBatch(ctx, docs, opts)

	failed := 0
	for _, d := range batch.Documents {
		switch d.Status {
		case ingestion.StatusIngested:
			fmt.Printf("%-10s %s: %d records (%d excluded) as %s\n", d.Status, d.DisplayName, d.Inserted, d.Excluded, d.SourceDocumentID)
		case ingestion.StatusFailed:
			failed++
			fmt.Printf("%-10s %s: %s\n", d.Status, d.DisplayName, d.Message)
		default:
			fmt.Printf("%-10s %s: %s\n", d.Status, d.DisplayName, d.Message)
		}
	}
	fmt.Printf("batch %s: %d documents, %d records inserted\n", batch.BatchID, len(batch.Documents), batch.Inserted())

	if *export != "" {
		if err := writeExport(*export, exportFormat, batch); err != nil {
			log.Printf("Export failed: %v", err)
			failed++
		} else {
			fmt.Printf("exported %d records to %s\n", len(batch.Records()), *export)
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// readDocuments loads every supported file under dir, subfolders included,
// in path order. Display names are relative to dir.
func readDocuments(dir string) ([]extract.Document, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supportedExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	docs := make([]extract.Document, 0, len(paths))
	for _, path := range paths {
		name, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, err
		}
		name = filepath.ToSlash(name)

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		docs = append(docs, extract.Document{DisplayName: name, Content: content})
	}
	return docs, nil
}

func writeExport(path string, format report.Format, batch ingestion.BatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f, format, batch.Records()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func splitTerms(raw string) []string {
	terms := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
