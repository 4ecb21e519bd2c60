package testpdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestBuild_PageCount(t *testing.T) {
	for _, pages := range []int{1, 3} {
		data := Build(pages)

		reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("Failed to parse generated %d-page PDF: %v", pages, err)
		}
		if reader.NumPage() != pages {
			t.Errorf("Expected %d pages, got %d", pages, reader.NumPage())
		}
	}
}

func TestBuild_PageText(t *testing.T) {
	data := Build(2)
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Failed to parse generated PDF: %v", err)
	}

	text, err := reader.Page(2).GetPlainText(nil)
	if err != nil {
		t.Fatalf("Failed to extract text: %v", err)
	}
	if !strings.Contains(text, "Page 2") {
		t.Errorf("Expected page 2 text, got %q", text)
	}
}
