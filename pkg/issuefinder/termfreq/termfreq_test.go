package termfreq

import (
	"reflect"
	"testing"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
	"github.com/cognicore/issuefinder/pkg/issuefinder/stoplist"
)

func TestCounterBasic(t *testing.T) {
	c := NewCounter()
	c.AddDocument(0, []string{"폭염", "경보", "폭염"})
	c.AddDocument(1, []string{"폭염", "", "가뭄"})

	if c.Count("폭염") != 3 {
		t.Errorf("Expected 폭염 count 3, got %d", c.Count("폭염"))
	}
	if c.Count("") != 0 {
		t.Error("Empty tokens should not be counted")
	}
	if c.UniqueTokens() != 3 {
		t.Errorf("Expected 3 unique tokens, got %d", c.UniqueTokens())
	}
	if c.Total() != 5 {
		t.Errorf("Expected 5 occurrences, got %d", c.Total())
	}
}

func TestTopOrdering(t *testing.T) {
	c := NewCounter()
	c.AddDocument(0, []string{"b", "a"})
	c.AddDocument(1, []string{"a", "b", "c"})
	c.AddDocument(2, []string{"c", "d"})

	// a, b and c are tied at 2; first occurrence decides
	got := c.Top(0)
	expected := []Term{{"b", 2}, {"a", 2}, {"c", 2}, {"d", 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Top(0) = %v, want %v", got, expected)
	}
}

func TestTopLimit(t *testing.T) {
	c := NewCounter()
	c.AddDocument(0, []string{"x", "x", "x", "y", "y", "z"})

	if got := c.Top(2); len(got) != 2 || got[0].Token != "x" || got[1].Token != "y" {
		t.Errorf("Top(2) = %v", got)
	}
	if got := c.Top(10); len(got) != 3 {
		t.Errorf("Top(10) should return every token, got %v", got)
	}
	if got := c.Top(-1); len(got) != 3 {
		t.Errorf("Top(-1) should return every token, got %v", got)
	}
}

func TestMergeMatchesSingleCounter(t *testing.T) {
	docs := [][]string{
		{"가뭄", "농가", "피해"},
		{"폭우", "피해"},
		{"농가", "지원", "피해"},
		{"폭우", "가뭄"},
	}

	whole := NewCounter()
	for i, d := range docs {
		whole.AddDocument(i, d)
	}

	// Merge shards out of order
	left, right := NewCounter(), NewCounter()
	for i, d := range docs[:2] {
		left.AddDocument(i, d)
	}
	for i, d := range docs[2:] {
		right.AddDocument(i+2, d)
	}
	merged := NewCounter()
	merged.Merge(right)
	merged.Merge(left)
	merged.Merge(nil)

	if !reflect.DeepEqual(whole.Top(0), merged.Top(0)) {
		t.Errorf("Merged top = %v, want %v", merged.Top(0), whole.Top(0))
	}
	if whole.Total() != merged.Total() {
		t.Errorf("Merged total = %d, want %d", merged.Total(), whole.Total())
	}
}

func TestAggregate(t *testing.T) {
	docs := []ingest.Document{
		{Title: "기후 위기 심각"},
		{Title: "기후 대응 정책 발표"},
	}
	stops := stoplist.New([]string{"기후", "위기", "대응", "정책"}, nil, ingest.Normalizer{})
	p := ingest.NewPipeline(ingest.SourceTitle, ingest.Normalizer{}, nil, stops)

	got := Aggregate(docs, p, 50)
	expected := []Term{{"심각", 1}, {"발표", 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Aggregate = %v, want %v", got, expected)
	}
}

func TestAggregateEmpty(t *testing.T) {
	p := ingest.NewPipeline(ingest.SourceTitle, ingest.Normalizer{}, nil, nil)

	got := Aggregate(nil, p, 50)
	if got == nil || len(got) != 0 {
		t.Errorf("Empty corpus should give an empty non-nil slice, got %#v", got)
	}
}

func TestTokens(t *testing.T) {
	terms := []Term{{"폭염", 3}, {"가뭄", 1}}

	if got := Tokens(terms); !reflect.DeepEqual(got, []string{"폭염", "가뭄"}) {
		t.Errorf("Tokens = %v", got)
	}
	if got := Tokens(nil); len(got) != 0 {
		t.Errorf("Tokens(nil) = %v", got)
	}
}
