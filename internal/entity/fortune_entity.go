package entity

// FortuneCategory is one life-domain pool of fortune messages. The order of
// categories in the corpus file is the canonical reading order.
type FortuneCategory struct {
	Category   string           `json:"category"`
	CategoryKo string           `json:"category_ko"`
	Messages   []FortuneMessage `json:"messages"`
}

type FortuneMessage struct {
	En string `json:"en"`
	Ko string `json:"ko"`
}

// FortuneEntry is one resolved reading line for a (name, day) pair.
type FortuneEntry struct {
	Category   string `json:"category"`
	CategoryKo string `json:"category_ko"`
	Message    string `json:"message"`
	MessageKo  string `json:"message_ko"`
}
