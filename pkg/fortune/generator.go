// Package fortune derives the daily reading for a selected name. Each line
// is a pure function of (name, hanja, category, calendar day), so the
// reading changes exactly when the day changes and needs no stored state.
package fortune

import (
	"time"

	"github.com/cespare/xxhash/v2"

	"naeilum-be/internal/entity"
	"naeilum-be/pkg/corpus"
)

type Generator struct {
	store *corpus.Store
}

func NewGenerator(store *corpus.Store) *Generator {
	return &Generator{store: store}
}

// Daily returns one fortune entry per category, in the corpus's canonical
// category order.
func (g *Generator) Daily(name entity.NameEntry, day time.Time) []entity.FortuneEntry {
	dayKey := day.Format("2006-01-02")

	cats := g.store.Fortunes()
	out := make([]entity.FortuneEntry, 0, len(cats))
	for _, cat := range cats {
		digest := xxhash.Sum64String(name.Name + "|" + name.Hanja + "|" + cat.Category + "|" + dayKey)
		msg := cat.Messages[digest%uint64(len(cat.Messages))]
		out = append(out, entity.FortuneEntry{
			Category:   cat.Category,
			CategoryKo: cat.CategoryKo,
			Message:    msg.En,
			MessageKo:  msg.Ko,
		})
	}
	return out
}
