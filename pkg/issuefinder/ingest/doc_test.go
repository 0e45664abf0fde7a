package ingest

import (
	"errors"
	"testing"

	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

func TestDocumentText(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		src  Source
		want string
	}{
		{"title only", Document{Title: "제목", Description: "요약"}, SourceTitle, "제목"},
		{"title and description", Document{Title: "제목", Description: "요약"}, SourceTitleDescription, "제목 요약"},
		{"missing description", Document{Title: "제목"}, SourceTitleDescription, "제목"},
		{"missing title", Document{Description: "요약"}, SourceTitleDescription, "요약"},
		{"missing title, title source", Document{Description: "요약"}, SourceTitle, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.doc.Text(tc.src); got != tc.want {
				t.Errorf("Text(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	valid := map[string]Source{
		"":                  SourceTitle,
		"title":             SourceTitle,
		" TITLE ":           SourceTitle,
		"title+description": SourceTitleDescription,
		"all":               SourceTitleDescription,
	}
	for in, want := range valid {
		got, err := ParseSource(in)
		if err != nil {
			t.Fatalf("ParseSource(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSource(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseSource("body"); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
