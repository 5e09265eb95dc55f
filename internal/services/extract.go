package services

import (
	"bytes"
	"errors"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrExtractorUnavailable means no extraction backend is present in this
// runtime. Callers turn it into an actionable message instead of a crash.
var ErrExtractorUnavailable = errors.New("no document extractor available in this environment")

// MinExtractedLength is the threshold under which callers treat extraction as
// failed and ask the candidate to resubmit as DOCX or a text-based PDF.
const MinExtractedLength = 50

// PDFStrategy is one entry of the PDF extraction chain. Strategies are tried
// in order and the first one yielding non-empty trimmed text wins.
type PDFStrategy interface {
	Name() string
	Available() bool
	Extract(data []byte) (string, error)
}

type ExtractorService interface {
	// ExtractText turns document bytes into plain text keyed by extension.
	// Returns ErrExtractorUnavailable when no backend can run at all; an
	// empty string (no error) when backends ran but found nothing usable.
	ExtractText(data []byte, ext string) (string, error)
}

type extractorService struct {
	pdfChain []PDFStrategy
}

// NewExtractorService wires the default strategy chain: layout-aware row
// extraction, then the plain-text API, then a raw content-stream scan.
func NewExtractorService() ExtractorService {
	return NewExtractorServiceWithChain([]PDFStrategy{
		rowTextStrategy{},
		plainTextStrategy{},
		rawScanStrategy{},
	})
}

// NewExtractorServiceWithChain lets callers inject their own chain, mainly
// for tests and for environments where a backend is known to be absent.
func NewExtractorServiceWithChain(chain []PDFStrategy) ExtractorService {
	return &extractorService{pdfChain: chain}
}

func (e *extractorService) ExtractText(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx", ".doc":
		return extractDOCX(data), nil
	default:
		return string(data), nil
	}
}

func (e *extractorService) extractPDF(data []byte) (string, error) {
	anyAvailable := false
	for _, strategy := range e.pdfChain {
		if !strategy.Available() {
			continue
		}
		anyAvailable = true
		text, err := strategy.Extract(data)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	if !anyAvailable {
		return "", ErrExtractorUnavailable
	}
	// Every backend ran but found nothing, e.g. an image-only scan. The
	// caller decides how to react.
	return "", nil
}

// extractDOCX concatenates paragraph text in document order. Unavailable or
// broken documents degrade to an empty string, not a failure.
func extractDOCX(data []byte) string {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return docxTagPattern.ReplaceAllString(content, "\n")
}

var docxTagPattern = regexp.MustCompile(`<[^>]*>`)

// rowTextStrategy is the layout-aware entry: it walks rows top to bottom so
// multi-column resumes keep their reading order.
type rowTextStrategy struct{}

func (rowTextStrategy) Name() string    { return "pdf-rows" }
func (rowTextStrategy) Available() bool { return true }

func (rowTextStrategy) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				builder.WriteString(word.S)
				builder.WriteString(" ")
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// plainTextStrategy uses the general-purpose plain-text API.
type plainTextStrategy struct{}

func (plainTextStrategy) Name() string    { return "pdf-plain" }
func (plainTextStrategy) Available() bool { return true }

func (plainTextStrategy) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}
	return builder.String(), nil
}

// rawScanStrategy is the last-resort parser: it scans uncompressed content
// streams for text-show operators. It only helps with the simplest PDFs but
// costs nothing to try after the real parsers give up.
type rawScanStrategy struct{}

func (rawScanStrategy) Name() string    { return "pdf-raw" }
func (rawScanStrategy) Available() bool { return true }

var pdfTextShowPattern = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*Tj`)

func (rawScanStrategy) Extract(data []byte) (string, error) {
	var builder strings.Builder
	for _, m := range pdfTextShowPattern.FindAllSubmatch(data, -1) {
		s := string(m[1])
		s = strings.ReplaceAll(s, `\(`, "(")
		s = strings.ReplaceAll(s, `\)`, ")")
		s = strings.ReplaceAll(s, `\\`, `\`)
		builder.WriteString(s)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// CleanText normalizes extracted text: trims lines and drops empty ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
