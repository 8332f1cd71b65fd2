package service

import (
	"math/rand/v2"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/domain"
)

// Picker returns a uniform index in [0, n). n is always > 0.
type Picker func(n int) int

// JokeService serves draws from a catalog that never changes after
// construction, so it needs no locking.
type JokeService struct {
	catalog    []domain.Joke
	categories []string
	pick       Picker
	onDraw     func(domain.Joke)
}

// NewJokeService copies catalog. A nil pick uses math/rand/v2.
func NewJokeService(catalog []domain.Joke, pick Picker) *JokeService {
	if pick == nil {
		pick = rand.IntN
	}
	jokes := make([]domain.Joke, len(catalog))
	copy(jokes, catalog)

	return &JokeService{
		catalog:    jokes,
		categories: distinctCategories(jokes),
		pick:       pick,
	}
}

// WithDrawObserver registers fn to be called with every joke served.
func (s *JokeService) WithDrawObserver(fn func(domain.Joke)) *JokeService {
	s.onDraw = fn
	return s
}

// Random draws one joke from the whole catalog.
func (s *JokeService) Random() (domain.Joke, error) {
	if len(s.catalog) == 0 {
		return domain.Joke{}, domain.ErrEmptyCatalog
	}
	return s.choose(s.catalog)
}

// RandomInCategory draws from the jokes whose category equals category
// exactly (case-sensitive).
func (s *JokeService) RandomInCategory(category string) (domain.Joke, error) {
	var matches []domain.Joke
	for _, j := range s.catalog {
		if j.Category == category {
			matches = append(matches, j)
		}
	}
	return s.choose(matches)
}

// Categories lists each category once. Callers must not rely on order.
func (s *JokeService) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *JokeService) choose(jokes []domain.Joke) (domain.Joke, error) {
	if len(jokes) == 0 {
		return domain.Joke{}, domain.ErrNoJokesInCategory
	}
	j := jokes[s.pick(len(jokes))]
	if s.onDraw != nil {
		s.onDraw(j)
	}
	return j, nil
}

func distinctCategories(jokes []domain.Joke) []string {
	seen := make(map[string]struct{}, len(jokes))
	out := make([]string, 0, len(jokes))
	for _, j := range jokes {
		if _, ok := seen[j.Category]; ok {
			continue
		}
		seen[j.Category] = struct{}{}
		out = append(out, j.Category)
	}
	return out
}
