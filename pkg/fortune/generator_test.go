package fortune

import (
	"reflect"
	"testing"
	"time"

	"naeilum-be/internal/entity"
	"naeilum-be/pkg/corpus"
)

var testDay = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestGenerator(t *testing.T) (*Generator, *corpus.Store) {
	t.Helper()
	st, err := corpus.Load("")
	if err != nil {
		t.Fatalf("corpus.Load: %v", err)
	}
	return NewGenerator(st), st
}

func TestDailyReproducibility(t *testing.T) {
	g, _ := newTestGenerator(t)
	name := entity.NameEntry{Name: "지훈", Hanja: "志勳"}

	first := g.Daily(name, testDay)
	second := g.Daily(name, testDay)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same (name, day) produced different readings:\n%v\n%v", first, second)
	}
}

func TestDailyCoversEveryCategoryInOrder(t *testing.T) {
	g, st := newTestGenerator(t)
	name := entity.NameEntry{Name: "서윤", Hanja: "瑞允"}

	for _, day := range []time.Time{testDay, testDay.AddDate(0, 0, 1), testDay.AddDate(0, 0, 2)} {
		reading := g.Daily(name, day)
		cats := st.Fortunes()
		if len(reading) != len(cats) {
			t.Fatalf("reading has %d entries, want %d", len(reading), len(cats))
		}
		for i, entry := range reading {
			if entry.Category != cats[i].Category {
				t.Errorf("entry %d category = %s, want %s", i, entry.Category, cats[i].Category)
			}
		}
	}
}

func TestDailyMessagesComeFromPool(t *testing.T) {
	g, st := newTestGenerator(t)
	name := entity.NameEntry{Name: "민준", Hanja: "敏俊"}

	reading := g.Daily(name, testDay)
	for i, entry := range reading {
		pool := st.Fortunes()[i].Messages
		found := false
		for _, msg := range pool {
			if msg.En == entry.Message && msg.Ko == entry.MessageKo {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("entry %d message %q not in the %s pool", i, entry.Message, entry.Category)
		}
	}
}

func TestDailyChangesOnlyWithDay(t *testing.T) {
	g, _ := newTestGenerator(t)
	name := entity.NameEntry{Name: "하은", Hanja: "河恩"}

	// Different clock times within one day must not change the reading.
	morning := g.Daily(name, testDay)
	evening := g.Daily(name, testDay.Add(10*time.Hour))
	if !reflect.DeepEqual(morning, evening) {
		t.Error("reading changed within the same calendar day")
	}

	allSame := true
	for i := 1; i <= 10; i++ {
		if !reflect.DeepEqual(morning, g.Daily(name, testDay.AddDate(0, 0, i))) {
			allSame = false
		}
	}
	if allSame {
		t.Error("reading never changed across ten day rollovers")
	}
}
