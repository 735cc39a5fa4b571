// Package namegen derives stable, well-distributed name shortlists from a
// normalized seed. Selection is a pure function of (seed, gender, calendar
// day): the digest of that triple seeds a deterministic generator, so the
// same submission always surfaces the same shortlist until the day rolls
// over, with no stored randomness.
package namegen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"

	"naeilum-be/internal/apperr"
	"naeilum-be/internal/entity"
	"naeilum-be/pkg/corpus"
)

// ShortlistSize re-exports the corpus shortlist length for callers.
const ShortlistSize = corpus.ShortlistSize

type Generator struct {
	store *corpus.Store

	// curated maps normalized special_match keys to their hand-picked
	// shortlists, per gender.
	curated map[entity.Gender]map[string][]entity.NameEntry
}

func NewGenerator(store *corpus.Store) *Generator {
	curated := make(map[entity.Gender]map[string][]entity.NameEntry)
	for _, gender := range []entity.Gender{entity.GenderMale, entity.GenderFemale} {
		lists := make(map[string][]entity.NameEntry)
		for _, e := range store.SpecialEntries(gender) {
			seed, err := Normalize(e.SpecialMatch)
			if err != nil {
				continue
			}
			lists[seed.Key] = append(lists[seed.Key], e)
		}
		curated[gender] = lists
	}
	return &Generator{store: store, curated: curated}
}

// DayKey renders the calendar day a derivation is bound to.
func DayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Shortlist returns the ordered shortlist for (seed, gender, day). Curated
// seeds override the general algorithm entirely. The general path draws one
// candidate per category until the shortlist is full, repeating a category
// only after every category has contributed, and never repeats a
// (name, hanja) pair.
func (g *Generator) Shortlist(seed NormalizedSeed, gender entity.Gender, day time.Time) ([]entity.NameEntry, error) {
	if list, ok := g.curated[gender][seed.Key]; ok && len(list) == ShortlistSize {
		out := make([]entity.NameEntry, ShortlistSize)
		copy(out, list)
		return out, nil
	}

	digest := xxhash.Sum64String(seed.Key + "|" + string(gender) + "|" + DayKey(day))
	rng := rand.New(rand.NewSource(int64(digest)))

	cats := append([]string(nil), g.store.Categories(gender)...)
	rng.Shuffle(len(cats), func(i, j int) { cats[i], cats[j] = cats[j], cats[i] })

	picked := make(map[string]bool, ShortlistSize)
	out := make([]entity.NameEntry, 0, ShortlistSize)
	for len(out) < ShortlistSize {
		progressed := false
		for _, cat := range cats {
			if len(out) == ShortlistSize {
				break
			}
			e, ok := pickDistinct(rng, g.store.NamesByCategory(gender, cat), picked)
			if !ok {
				continue
			}
			out = append(out, e)
			picked[e.Key()] = true
			progressed = true
		}
		if !progressed {
			return nil, fmt.Errorf("%w: %s pool exhausted after %d picks",
				apperr.ErrInsufficientCorpus, gender, len(out))
		}
	}
	return out, nil
}

func pickDistinct(rng *rand.Rand, pool []entity.NameEntry, picked map[string]bool) (entity.NameEntry, bool) {
	if len(pool) == 0 {
		return entity.NameEntry{}, false
	}
	start := rng.Intn(len(pool))
	for i := 0; i < len(pool); i++ {
		e := pool[(start+i)%len(pool)]
		if !picked[e.Key()] {
			return e, true
		}
	}
	return entity.NameEntry{}, false
}
