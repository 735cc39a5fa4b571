package entity

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// NameEntry is one recommendable Korean name from the static corpus.
// Entries are immutable after load; (Name, Hanja) identifies an entry
// globally.
type NameEntry struct {
	Name         string   `json:"name"`
	Hanja        string   `json:"hanja"`
	Romanization []string `json:"romanization"`
	Category     string   `json:"category"`
	Meaning      string   `json:"meaning"`
	Initial      string   `json:"initial"`
	SpecialMatch string   `json:"special_match,omitempty"`
}

// Key returns the identity of the entry within a shortlist.
func (e NameEntry) Key() string {
	return e.Name + "\x00" + e.Hanja
}
