package cooccur

import (
	"reflect"
	"testing"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

func weights(edges []Edge) [][3]any {
	out := make([][3]any, len(edges))
	for i, e := range edges {
		out[i] = [3]any{e.Source, e.Target, e.Weight}
	}
	return out
}

func TestEdgesSingleDocument(t *testing.T) {
	docs := []ingest.Document{{Title: "A B C"}}
	p := ingest.NewPipeline(ingest.SourceTitle, ingest.NewNormalizer(ingest.ScriptLetters), nil, nil)

	got := weights(Aggregate(docs, p, nil, DefaultMinWeight))
	expected := [][3]any{
		{"a", "b", int64(1)},
		{"a", "c", int64(1)},
		{"b", "c", int64(1)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Edges = %v, want %v", got, expected)
	}
}

func TestEdgesOrderAndMinWeight(t *testing.T) {
	counter := NewCounter(nil)
	counter.AddDocument([]string{"c", "d"})
	counter.AddDocument([]string{"a", "b"})
	counter.AddDocument([]string{"c", "d"})
	counter.AddDocument([]string{"a", "d"})

	got := weights(counter.Edges(0, nil))
	expected := [][3]any{
		{"c", "d", int64(2)},
		{"a", "b", int64(1)},
		{"a", "d", int64(1)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Edges = %v, want %v", got, expected)
	}

	heavy := counter.Edges(2, NewCalculator(DefaultEpsilon))
	if len(heavy) != 1 || heavy[0].Source != "c" || heavy[0].Target != "d" {
		t.Errorf("Edges(2) = %v", heavy)
	}
}

func TestEdgesInvariants(t *testing.T) {
	counter := NewCounter(nil)
	docs := [][]string{
		{"폭염", "온열", "질환", "폭염"},
		{"폭염", "전력", "수요"},
		{"온열", "질환", "사망"},
		{"전력", "수요", "폭염", "경보"},
	}
	for _, d := range docs {
		counter.AddDocument(d)
	}

	for _, e := range counter.Edges(DefaultMinWeight, nil) {
		if e.Source == e.Target {
			t.Errorf("Self-loop edge %v", e)
		}
		if e.Source > e.Target {
			t.Errorf("Edge %v is not canonical", e)
		}
		if e.Weight < 1 || e.Weight > counter.TotalDocs() {
			t.Errorf("Edge weight %d outside [1,%d]", e.Weight, counter.TotalDocs())
		}
		if e.NPMI < -1 || e.NPMI > 1 {
			t.Errorf("Edge NPMI %f outside [-1,1]", e.NPMI)
		}
	}
}

func TestEdgesEmpty(t *testing.T) {
	p := ingest.NewPipeline(ingest.SourceTitle, ingest.Normalizer{}, nil, nil)

	got := Aggregate(nil, p, nil, DefaultMinWeight)
	if got == nil || len(got) != 0 {
		t.Errorf("Empty corpus should give an empty non-nil slice, got %#v", got)
	}
}

func TestAggregateCandidates(t *testing.T) {
	docs := []ingest.Document{
		{Title: "폭우 침수 피해"},
		{Title: "폭우 침수 대피"},
	}
	p := ingest.NewPipeline(ingest.SourceTitle, ingest.Normalizer{}, nil, nil)

	got := weights(Aggregate(docs, p, []string{"폭우", "침수"}, DefaultMinWeight))
	expected := [][3]any{{"침수", "폭우", int64(2)}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Edges = %v, want %v", got, expected)
	}
}
