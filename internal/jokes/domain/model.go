package domain

// Joke is one entry of the catalog.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Category  string `json:"category"`
}
