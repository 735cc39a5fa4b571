package dto

type RecommendRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Gender string `json:"gender" validate:"required,oneof=male female"`
}

type NameDTO struct {
	Name         string   `json:"name"`
	Hanja        string   `json:"hanja"`
	Romanization []string `json:"romanization"`
	Meaning      string   `json:"meaning"`
	Category     string   `json:"category"`
}

type RecommendResponse struct {
	Success bool      `json:"success"`
	Names   []NameDTO `json:"names"`
}

// Index is a pointer so that a missing field fails validation while a
// legitimate index 0 passes.
type SelectRequest struct {
	Index *int `json:"index" validate:"required"`
}

type FortuneDTO struct {
	Category   string `json:"category"`
	CategoryKo string `json:"category_ko"`
	Message    string `json:"message"`
	MessageKo  string `json:"message_ko"`
}

type SelectResponse struct {
	Success bool         `json:"success"`
	Name    NameDTO      `json:"name"`
	Fortune []FortuneDTO `json:"fortune"`
}

type SelectionResponse struct {
	Success bool    `json:"success"`
	Name    NameDTO `json:"name"`
}
