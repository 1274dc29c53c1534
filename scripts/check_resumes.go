package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/config"
	"alfredoptarigan/interview-fever/internal/services"
)

// Runs the resume acceptance checks over every PDF given on the command line.
//
//	go run ./scripts/check_resumes.go resumes/*.pdf
func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		log.Fatalf("usage: %s <resume.pdf>...", filepath.Base(os.Args[0]))
	}

	log.Println("🚀 Checking resumes...")

	cfg := config.Load()
	ingestion := services.NewIngestionService(
		services.NewPDFParserService(zap.NewNop()),
		cfg.Ingestion.MaxFileSize,
		cfg.Ingestion.MinResumeChars,
		nil,
		zap.NewNop(),
	)

	acceptedCount := 0
	rejectedCount := 0

	for _, path := range paths {
		log.Printf("\n📄 Processing: %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ⚠️  Cannot read file: %v", err)
			rejectedCount++
			continue
		}

		doc, err := ingestion.Ingest(data, int64(len(data)))
		if err != nil {
			kind, ok := services.KindOf(err)
			if !ok {
				kind = "error"
			}
			log.Printf("   ❌ Rejected (%s): %v", kind, err)
			rejectedCount++
			continue
		}

		log.Printf("   ✅ Accepted: %d pages, %d characters via %s",
			doc.PageCount, len([]rune(doc.NormalizedText)), doc.Extractor)
		acceptedCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Resume Check Summary:")
	log.Printf("   ✅ Accepted: %d resumes", acceptedCount)
	log.Printf("   ❌ Rejected: %d resumes", rejectedCount)
	log.Println(strings.Repeat("=", 60))

	if rejectedCount > 0 {
		fmt.Fprintln(os.Stderr, "⚠️  Some resumes would be turned away by the upload check.")
		os.Exit(1)
	}

	log.Println("✅ All resumes pass the upload check!")
}
