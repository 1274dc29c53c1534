package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"alfredoptarigan/interview-fever/internal/models"
)

const (
	DefaultMaxFileSize    int64 = 5_000_000
	DefaultMinResumeChars       = 100
)

var resumeKeywords = []string{"experience", "skills", "education"}

type IngestionService interface {
	// Ingest validates an uploaded resume. declaredSize is the size reported by
	// the uploader; the larger of it and len(data) is checked against the limit.
	Ingest(data []byte, declaredSize int64) (*models.ResumeDocument, error)
}

type ingestionService struct {
	parser      PDFParserService
	maxFileSize int64
	minChars    int
	metrics     *Metrics
	logger      *zap.Logger
	now         func() time.Time
}

func NewIngestionService(
	parser PDFParserService,
	maxFileSize int64,
	minChars int,
	metrics *Metrics,
	logger *zap.Logger,
) IngestionService {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if minChars <= 0 {
		minChars = DefaultMinResumeChars
	}
	return &ingestionService{
		parser:      parser,
		maxFileSize: maxFileSize,
		minChars:    minChars,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ingestionService) Ingest(data []byte, declaredSize int64) (*models.ResumeDocument, error) {
	size := int64(len(data))
	if declaredSize > size {
		size = declaredSize
	}

	if size > s.maxFileSize {
		return nil, s.reject(newError(KindTooLarge,
			fmt.Sprintf("File size too large (max %s)", formatMegabytes(s.maxFileSize)), nil))
	}

	content, err := s.parser.ExtractText(data)
	if err != nil {
		return nil, s.reject(newError(KindExtractionFailed, "PDF processing failed", err))
	}

	text := NormalizeText(content.Text)

	if utf8.RuneCountInString(text) < s.minChars {
		return nil, s.reject(newError(KindLikelyScanned,
			"This appears to be a scanned PDF. Please upload a text-based PDF.", nil))
	}

	if !hasResumeSection(text) {
		return nil, s.reject(newError(KindMissingSections,
			"Invalid resume format: missing key sections (experience, skills or education)", nil))
	}

	s.metrics.ObserveIngestion("accepted")
	s.logger.Info("resume accepted",
		zap.String("extractor", content.Extractor),
		zap.Int("pages", content.PageCount),
		zap.Int("chars", utf8.RuneCountInString(text)),
	)

	return &models.ResumeDocument{
		Raw:            data,
		Size:           size,
		NormalizedText: text,
		Extractor:      content.Extractor,
		PageCount:      content.PageCount,
		AcceptedAt:     s.now(),
	}, nil
}

func (s *ingestionService) reject(err *Error) error {
	s.metrics.ObserveIngestion(string(err.Kind))
	s.logger.Info("resume rejected", zap.String("kind", string(err.Kind)), zap.Error(err))
	return err
}

// NormalizeText strips control characters and invalid encodings, then
// collapses every whitespace run into a single space.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(toSafeText(text)), " ")
}

func toSafeText(text string) string {
	if out, _, err := transform.String(safeUTF8(), text); err == nil {
		return out
	}
	out, _, _ := transform.String(safeASCII(), text)
	return out
}

// unsafeRune matches NUL and other non-whitespace controls. Ill-formed input
// bytes reach the predicate as utf8.RuneError.
func unsafeRune(r rune) bool {
	return r == utf8.RuneError || (unicode.IsControl(r) && !unicode.IsSpace(r))
}

func safeUTF8() transform.Transformer {
	return runes.Remove(runes.Predicate(unsafeRune))
}

func safeASCII() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII || unsafeRune(r)
	})))
}

func hasResumeSection(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range resumeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func formatMegabytes(n int64) string {
	if n%1_000_000 == 0 {
		return fmt.Sprintf("%dMB", n/1_000_000)
	}
	return fmt.Sprintf("%d bytes", n)
}
