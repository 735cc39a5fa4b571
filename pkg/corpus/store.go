// Package corpus holds the immutable name and fortune tables. The tables are
// loaded once at startup from JSON (embedded defaults, overridable by a data
// directory) and are read-only afterwards, so any number of requests may
// share the store without locking.
package corpus

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"naeilum-be/internal/apperr"
	"naeilum-be/internal/entity"
)

// ShortlistSize is the number of candidates every recommendation returns.
const ShortlistSize = 5

//go:embed data/*.json
var embedded embed.FS

var nameFiles = map[entity.Gender]string{
	entity.GenderMale:   "names_male.json",
	entity.GenderFemale: "names_female.json",
}

const fortuneFile = "fortunes.json"

type Store struct {
	regular    map[entity.Gender][]entity.NameEntry
	byCategory map[entity.Gender]map[string][]entity.NameEntry
	categories map[entity.Gender][]string
	specials   map[entity.Gender][]entity.NameEntry
	fortunes   []entity.FortuneCategory
}

// Load reads the corpus tables and validates the invariants the selection
// engine depends on. dir may be empty, in which case only the embedded
// defaults are used. Validation failures are fatal configuration errors.
func Load(dir string) (*Store, error) {
	s := &Store{
		regular:    make(map[entity.Gender][]entity.NameEntry),
		byCategory: make(map[entity.Gender]map[string][]entity.NameEntry),
		categories: make(map[entity.Gender][]string),
		specials:   make(map[entity.Gender][]entity.NameEntry),
	}

	for gender, file := range nameFiles {
		var entries []entity.NameEntry
		if err := loadJSON(dir, file, &entries); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		s.index(gender, entries)
	}

	if err := loadJSON(dir, fortuneFile, &s.fortunes); err != nil {
		return nil, fmt.Errorf("load %s: %w", fortuneFile, err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadJSON(dir, file string, out any) error {
	if dir != "" {
		raw, err := os.ReadFile(filepath.Join(dir, file))
		if err == nil {
			return json.Unmarshal(raw, out)
		}
		if !os.IsNotExist(err) {
			return err
		}
		// Fall through to the embedded copy.
	}
	raw, err := embedded.ReadFile("data/" + file)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *Store) index(gender entity.Gender, entries []entity.NameEntry) {
	byCat := make(map[string][]entity.NameEntry)
	for _, e := range entries {
		if len(e.Romanization) == 0 {
			e.Romanization = []string{RomanizeText(e.Name)}
		}
		if e.SpecialMatch != "" {
			s.specials[gender] = append(s.specials[gender], e)
			continue
		}
		s.regular[gender] = append(s.regular[gender], e)
		byCat[e.Category] = append(byCat[e.Category], e)
	}

	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	s.byCategory[gender] = byCat
	s.categories[gender] = cats
}

func (s *Store) validate() error {
	seen := make(map[string]bool)
	for gender := range nameFiles {
		all := append(append([]entity.NameEntry{}, s.regular[gender]...), s.specials[gender]...)
		for _, e := range all {
			if e.Name == "" || e.Category == "" || e.Meaning == "" {
				return fmt.Errorf("%w: incomplete entry %q (%s)", apperr.ErrInsufficientCorpus, e.Name, gender)
			}
			if seen[e.Key()] {
				return fmt.Errorf("%w: duplicate entry %s/%s", apperr.ErrInsufficientCorpus, e.Name, e.Hanja)
			}
			seen[e.Key()] = true
		}
		if len(s.regular[gender]) < ShortlistSize {
			return fmt.Errorf("%w: %s pool has %d entries, need %d",
				apperr.ErrInsufficientCorpus, gender, len(s.regular[gender]), ShortlistSize)
		}

		// Every curated override must be a complete shortlist on its own.
		byMatch := make(map[string]int)
		for _, e := range s.specials[gender] {
			byMatch[e.SpecialMatch]++
		}
		for match, n := range byMatch {
			if n != ShortlistSize {
				return fmt.Errorf("%w: curated list %q (%s) has %d entries, need %d",
					apperr.ErrInsufficientCorpus, match, gender, n, ShortlistSize)
			}
		}
	}

	if len(s.fortunes) == 0 {
		return fmt.Errorf("%w: no fortune categories", apperr.ErrInsufficientCorpus)
	}
	for _, cat := range s.fortunes {
		if cat.Category == "" || len(cat.Messages) == 0 {
			return fmt.Errorf("%w: fortune category %q has no messages", apperr.ErrInsufficientCorpus, cat.Category)
		}
	}
	return nil
}

// Names returns the general candidate pool for a gender, curated overrides
// excluded.
func (s *Store) Names(gender entity.Gender) []entity.NameEntry {
	return s.regular[gender]
}

// Categories returns the gender's category list in sorted order.
func (s *Store) Categories(gender entity.Gender) []string {
	return s.categories[gender]
}

func (s *Store) NamesByCategory(gender entity.Gender, category string) []entity.NameEntry {
	return s.byCategory[gender][category]
}

// SpecialEntries returns the entries reserved for curated seed overrides.
func (s *Store) SpecialEntries(gender entity.Gender) []entity.NameEntry {
	return s.specials[gender]
}

// Fortunes returns the fortune categories in canonical reading order.
func (s *Store) Fortunes() []entity.FortuneCategory {
	return s.fortunes
}
