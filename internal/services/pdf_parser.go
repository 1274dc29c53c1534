package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// TextExtractor is one strategy for pulling plain text out of a PDF.
type TextExtractor interface {
	Name() string
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFParserService interface {
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	Extractor string
}

var errNoText = errors.New("no text content found in PDF")

type pdfParserService struct {
	extractors []TextExtractor
	logger     *zap.Logger
}

// NewPDFParserService tries extractors in order. With none given it uses
// DefaultExtractors.
func NewPDFParserService(logger *zap.Logger, extractors ...TextExtractor) PDFParserService {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}
	return &pdfParserService{
		extractors: extractors,
		logger:     logger,
	}
}

func DefaultExtractors() []TextExtractor {
	return []TextExtractor{
		NewPlainTextExtractor(),
		NewFitzExtractor(),
	}
}

// ExtractText returns the first non-blank result. When every extractor fails the
// error joins each extractor's failure.
func (p *pdfParserService) ExtractText(data []byte) (*PDFContent, error) {
	var errs []error

	for _, extractor := range p.extractors {
		content, err := extractor.ExtractText(data)
		if err == nil && strings.TrimSpace(content.Text) == "" {
			err = errNoText
		}
		if err != nil {
			p.logger.Warn("pdf extractor failed",
				zap.String("extractor", extractor.Name()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", extractor.Name(), err))
			continue
		}

		content.Extractor = extractor.Name()
		return content, nil
	}

	if len(errs) == 0 {
		return nil, errors.New("no pdf extractors configured")
	}
	return nil, errors.Join(errs...)
}

type plainTextExtractor struct{}

// NewPlainTextExtractor reads each page's text objects with ledongthuc/pdf.
func NewPlainTextExtractor() TextExtractor {
	return plainTextExtractor{}
}

func (plainTextExtractor) Name() string { return "pdf" }

func (plainTextExtractor) ExtractText(data []byte) (content *PDFContent, err error) {
	// The reader panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			content, err = nil, fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}

type fitzExtractor struct{}

// NewFitzExtractor uses MuPDF's layout-aware text extraction.
func NewFitzExtractor() TextExtractor {
	return fitzExtractor{}
}

func (fitzExtractor) Name() string { return "mupdf" }

func (fitzExtractor) ExtractText(data []byte) (*PDFContent, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	pageCount := doc.NumPage()

	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: pageCount,
	}, nil
}
