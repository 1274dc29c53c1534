package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubParser struct {
	content *PDFContent
	err     error
	calls   int
}

func (p *stubParser) ExtractText(data []byte) (*PDFContent, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.content, nil
}

const sampleResume = `Jane Doe
jane@example.com

Experience
Backend engineer at Example Corp, 2019 - present. Built payment services in Go.

Skills
Go, PostgreSQL, Kubernetes

Education
B.Sc. Computer Science`

func newTestIngestion(parser PDFParserService) IngestionService {
	return NewIngestionService(parser, 0, 0, nil, zap.NewNop())
}

func TestIngest_AcceptsResume(t *testing.T) {
	parser := &stubParser{content: &PDFContent{Text: sampleResume, PageCount: 1, Extractor: "pdf"}}
	svc := newTestIngestion(parser)

	doc, err := svc.Ingest([]byte("%PDF-1.4 fake"), 0)
	require.NoError(t, err)

	assert.Equal(t, "pdf", doc.Extractor)
	assert.Equal(t, 1, doc.PageCount)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), doc.Size)
	assert.NotContains(t, doc.NormalizedText, "\n")
	assert.NotContains(t, doc.NormalizedText, "  ")
	assert.True(t, strings.HasPrefix(doc.NormalizedText, "Jane Doe jane@example.com Experience"))
}

func TestIngest_TooLargeSkipsExtraction(t *testing.T) {
	parser := &stubParser{content: &PDFContent{Text: sampleResume}}
	svc := newTestIngestion(parser)

	_, err := svc.Ingest([]byte("small"), 6_000_000)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTooLarge))
	assert.Equal(t, "File size too large (max 5MB)", err.Error())
	assert.Zero(t, parser.calls)
}

func TestIngest_SizeBoundary(t *testing.T) {
	parser := &stubParser{content: &PDFContent{Text: sampleResume}}
	svc := newTestIngestion(parser)

	_, err := svc.Ingest([]byte("x"), DefaultMaxFileSize)
	assert.NoError(t, err)

	_, err = svc.Ingest([]byte("x"), DefaultMaxFileSize+1)
	assert.True(t, IsKind(err, KindTooLarge))
}

func TestIngest_ExtractionFailure(t *testing.T) {
	cause := errors.New("broken xref")
	svc := newTestIngestion(&stubParser{err: cause})

	_, err := svc.Ingest([]byte("garbage"), 0)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindExtractionFailed))
	assert.ErrorIs(t, err, cause)
}

func TestIngest_ShortTextLooksScanned(t *testing.T) {
	svc := newTestIngestion(&stubParser{content: &PDFContent{Text: "Experience Skills Education"}})

	_, err := svc.Ingest([]byte("%PDF"), 0)
	assert.True(t, IsKind(err, KindLikelyScanned))
}

func TestIngest_MinimumCountsRunesAfterNormalizing(t *testing.T) {
	// 99 visible characters padded with whitespace and NULs must still be rejected.
	text := "experience " + strings.Repeat("a", 88)
	require.Len(t, []rune(text), 99)
	padded := "\x00  " + strings.ReplaceAll(text, " ", "\n\n\t ") + "   \x00"

	svc := newTestIngestion(&stubParser{content: &PDFContent{Text: padded}})
	_, err := svc.Ingest([]byte("%PDF"), 0)
	assert.True(t, IsKind(err, KindLikelyScanned))

	svc = newTestIngestion(&stubParser{content: &PDFContent{Text: text + "a"}})
	_, err = svc.Ingest([]byte("%PDF"), 0)
	assert.NoError(t, err)
}

func TestIngest_MissingSections(t *testing.T) {
	text := strings.Repeat("Lorem ipsum dolor sit amet. ", 10)
	svc := newTestIngestion(&stubParser{content: &PDFContent{Text: text}})

	_, err := svc.Ingest([]byte("%PDF"), 0)
	assert.True(t, IsKind(err, KindMissingSections))
}

func TestIngest_SectionKeywordIsCaseInsensitive(t *testing.T) {
	text := strings.Repeat("Lorem ipsum dolor sit amet. ", 10) + "TECHNICAL SKILLS"
	svc := newTestIngestion(&stubParser{content: &PDFContent{Text: text}})

	_, err := svc.Ingest([]byte("%PDF"), 0)
	assert.NoError(t, err)
}

func TestIngest_RecordsMetrics(t *testing.T) {
	metrics := NewMetrics()
	svc := NewIngestionService(&stubParser{content: &PDFContent{Text: "short"}}, 0, 0, metrics, zap.NewNop())

	_, err := svc.Ingest([]byte("%PDF"), 0)
	require.Error(t, err)

	families, err := metrics.registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "interview_resume_ingestions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if m.GetLabel()[0].GetValue() == string(KindLikelyScanned) {
				found = true
				assert.Equal(t, 1.0, m.GetCounter().GetValue())
			}
		}
	}
	assert.True(t, found)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "a \n\n b\t\tc", "a b c"},
		{"trims", "   hello   ", "hello"},
		{"drops nul and controls", "a\x00b\x07 c", "ab c"},
		{"drops invalid utf8", "caf\xffe", "cafe"},
		{"keeps unicode", "Zoë  Müller", "Zoë Müller"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestIngest_TwoPageResume(t *testing.T) {
	data := readTwoPageResume(t)
	svc := NewIngestionService(NewPDFParserService(zap.NewNop()), DefaultMaxFileSize, DefaultMinResumeChars, nil, zap.NewNop())

	doc, err := svc.Ingest(data, int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, "pdf", doc.Extractor)
	assert.Equal(t, 2, doc.PageCount)
	assert.Contains(t, doc.NormalizedText, "Skills")
	assert.Contains(t, doc.NormalizedText, "Experience")
	assert.NotContains(t, doc.NormalizedText, "  ")
	assert.NotContains(t, doc.NormalizedText, "\x00")
}

func TestIngest_NinetyCharsWithEveryKeyword(t *testing.T) {
	text := "Experience Skills Education " + strings.Repeat("x", 62)
	require.Len(t, []rune(NormalizeText(text)), 90)

	svc := newTestIngestion(&stubParser{content: &PDFContent{Text: text}})
	_, err := svc.Ingest([]byte("%PDF"), 0)
	assert.True(t, IsKind(err, KindLikelyScanned), "got %v", err)
}
