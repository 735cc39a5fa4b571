package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"naeilum-be/internal/apperr"
	"naeilum-be/internal/entity"
)

func TestLoadEmbeddedCorpus(t *testing.T) {
	st, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, gender := range []entity.Gender{entity.GenderMale, entity.GenderFemale} {
		if got := len(st.Names(gender)); got < ShortlistSize {
			t.Errorf("%s pool has %d entries, want >= %d", gender, got, ShortlistSize)
		}
		if got := len(st.Categories(gender)); got < ShortlistSize {
			t.Errorf("%s pool has %d categories, want >= %d for diversity", gender, got, ShortlistSize)
		}
		for _, e := range st.Names(gender) {
			if len(e.Romanization) == 0 {
				t.Errorf("entry %s has no romanization after load", e.Name)
			}
		}
	}

	if len(st.Fortunes()) == 0 {
		t.Fatal("no fortune categories loaded")
	}
	for _, cat := range st.Fortunes() {
		if len(cat.Messages) == 0 {
			t.Errorf("fortune category %s has no messages", cat.Category)
		}
	}
}

func TestLoadCuratedListsAreCompleteShortlists(t *testing.T) {
	st, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	byMatch := make(map[string]int)
	for _, e := range st.SpecialEntries(entity.GenderMale) {
		byMatch[e.SpecialMatch]++
	}
	for match, n := range byMatch {
		if n != ShortlistSize {
			t.Errorf("curated list %q has %d entries, want %d", match, n, ShortlistSize)
		}
	}
}

func TestLoadRejectsUndersizedPool(t *testing.T) {
	dir := t.TempDir()
	tiny := `[
		{"name": "지훈", "hanja": "志勳", "category": "Honor", "meaning": "Ambition crowned with merit", "initial": "J"}
	]`
	if err := os.WriteFile(filepath.Join(dir, "names_male.json"), []byte(tiny), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load accepted a pool that cannot fill a shortlist")
	}
	if !strings.Contains(err.Error(), apperr.ErrInsufficientCorpus.Error()) {
		t.Errorf("error = %v, want wrapped ErrInsufficientCorpus", err)
	}
}

func TestLoadRejectsDuplicateEntries(t *testing.T) {
	dir := t.TempDir()
	entry := `{"name": "지훈", "hanja": "志勳", "category": "Honor", "meaning": "x", "initial": "J"}`
	dup := "[" + entry + "," + entry + `,
		{"name": "a", "hanja": "b", "category": "C", "meaning": "m", "initial": "A"},
		{"name": "c", "hanja": "d", "category": "C", "meaning": "m", "initial": "C"},
		{"name": "e", "hanja": "f", "category": "C", "meaning": "m", "initial": "E"},
		{"name": "g", "hanja": "h", "category": "C", "meaning": "m", "initial": "G"}]`
	if err := os.WriteFile(filepath.Join(dir, "names_male.json"), []byte(dup), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted duplicate (name, hanja) entries")
	}
}
