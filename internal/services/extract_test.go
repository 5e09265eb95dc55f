package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	name      string
	available bool
	text      string
	err       error
}

func (f fakeStrategy) Name() string    { return f.name }
func (f fakeStrategy) Available() bool { return f.available }
func (f fakeStrategy) Extract(data []byte) (string, error) {
	return f.text, f.err
}

func TestExtractPDFFirstNonEmptyWins(t *testing.T) {
	svc := NewExtractorServiceWithChain([]PDFStrategy{
		fakeStrategy{name: "first", available: true, text: "   "},
		fakeStrategy{name: "second", available: true, text: "resume text"},
		fakeStrategy{name: "third", available: true, text: "never reached"},
	})

	text, err := svc.ExtractText([]byte("%PDF"), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "resume text", text)
}

func TestExtractPDFSkipsFailingStrategy(t *testing.T) {
	svc := NewExtractorServiceWithChain([]PDFStrategy{
		fakeStrategy{name: "broken", available: true, err: errors.New("parse failure")},
		fakeStrategy{name: "fallback", available: true, text: "recovered"},
	})

	text, err := svc.ExtractText([]byte("%PDF"), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
}

func TestExtractPDFNoneAvailable(t *testing.T) {
	svc := NewExtractorServiceWithChain([]PDFStrategy{
		fakeStrategy{name: "off", available: false, text: "unused"},
	})

	_, err := svc.ExtractText([]byte("%PDF"), ".pdf")
	assert.ErrorIs(t, err, ErrExtractorUnavailable)
}

func TestExtractPDFAllEmpty(t *testing.T) {
	svc := NewExtractorServiceWithChain([]PDFStrategy{
		fakeStrategy{name: "first", available: true, text: ""},
		fakeStrategy{name: "second", available: true, text: "\n\n"},
	})

	text, err := svc.ExtractText([]byte("%PDF"), ".pdf")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractPlainTextPassthrough(t *testing.T) {
	svc := NewExtractorService()

	text, err := svc.ExtractText([]byte("plain resume content"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "plain resume content", text)
}

func TestExtractDOCXBrokenDocument(t *testing.T) {
	// Garbage bytes degrade to empty text, never an error.
	text := extractDOCX([]byte("not a zip archive"))
	assert.Empty(t, text)
}

func TestRawScanStrategy(t *testing.T) {
	data := []byte(`BT (Hello) Tj (World \(escaped\)) Tj ET`)

	text, err := rawScanStrategy{}.Extract(data)
	require.NoError(t, err)
	assert.Contains(t, text, "Hello")
	assert.Contains(t, text, "World (escaped)")
}

func TestCleanText(t *testing.T) {
	input := "  John Smith  \n\n\n  Engineer \n"
	assert.Equal(t, "John Smith\nEngineer", CleanText(input))
}
