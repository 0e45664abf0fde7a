package stoplist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

func TestSetBasic(t *testing.T) {
	set := New([]string{"그리고", " 하지만 ", ""}, []string{"기후 변화", "에"}, ingest.Normalizer{})

	for _, w := range []string{"그리고", "하지만", "기후", "변화", "에"} {
		if !set.IsStop(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	if set.IsStop("심각") {
		t.Error("'심각' should not be a stopword")
	}
	if set.IsStop("기후 변화") {
		t.Error("Extension phrases should be split into single tokens")
	}
	if set.Len() != 5 {
		t.Errorf("Expected 5 stopwords, got %d", set.Len())
	}
}

func TestSetNormalizesEntries(t *testing.T) {
	set := New([]string{"The", "<b>AND</b>"}, nil, ingest.NewNormalizer(ingest.ScriptLetters))

	if !set.IsStop("the") || !set.IsStop("and") {
		t.Errorf("Entries should be normalized like tokens, got %v", set.All())
	}

	hangul := New([]string{"stop", "기후!"}, nil, ingest.Normalizer{})
	if hangul.Len() != 1 || !hangul.IsStop("기후") {
		t.Errorf("Hangul set should hold only 기후, got %v", hangul.All())
	}
}

func TestSetAll(t *testing.T) {
	set := New([]string{"다", "나", "가", "나"}, nil, ingest.Normalizer{})

	all := set.All()
	if !reflect.DeepEqual(all, []string{"가", "나", "다"}) {
		t.Errorf("All = %v", all)
	}
}

func TestNilSet(t *testing.T) {
	var set *Set

	if set.IsStop("기후") {
		t.Error("Nil set should contain nothing")
	}
	if set.Len() != 0 || set.All() != nil {
		t.Error("Nil set should be empty")
	}
}

func TestDomainExtension(t *testing.T) {
	set := New(nil, DomainExtension, ingest.Normalizer{})

	for _, w := range []string{"기후", "기후변화", "정부", "입니다", "에게서"} {
		if !set.IsStop(w) {
			t.Errorf("%q should be in the domain extension", w)
		}
	}
	if set.IsStop("폭염") {
		t.Error("'폭염' should not be in the domain extension")
	}
	if set.Len() != len(DomainExtension) {
		t.Errorf("Expected %d distinct stopwords, got %d", len(DomainExtension), set.Len())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korean_stopwords.txt")
	content := "\ufeff아\n휴\n\n  아이구 \r\n아이쿠\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := []string{"아", "휴", "아이구", "아이쿠"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Load = %v, want %v", words, expected)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Should error on missing stopword file")
	}
	if !errors.Is(err, internalerr.ErrStopwordsUnavailable) {
		t.Errorf("Expected ErrStopwordsUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the os error to be wrapped, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	if words := Parse(nil); len(words) != 0 {
		t.Errorf("Parse(nil) = %v", words)
	}
	if words := Parse([]byte("\n\n  \n")); len(words) != 0 {
		t.Errorf("Blank lines should be skipped, got %v", words)
	}
}
