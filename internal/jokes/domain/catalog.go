package domain

const (
	CategoryProgramming = "programming"
	CategoryFood        = "food"
	CategoryPun         = "pun"
	CategorySchool      = "school"
)

// DefaultCatalog returns a fresh copy of the built-in jokes.
func DefaultCatalog() []Joke {
	return []Joke{
		{Setup: "Why did the developer go broke?", Punchline: "Because he used up all his cache!", Category: CategoryProgramming},
		{Setup: "Why do programmers prefer dark mode?", Punchline: "Because light attracts bugs!", Category: CategoryProgramming},
		{Setup: "What do you call a fake noodle?", Punchline: "An impasta!", Category: CategoryFood},
		{Setup: "Why don't skeletons fight each other?", Punchline: "They don't have the guts!", Category: CategoryPun},
		{Setup: "What did the ocean say to the beach?", Punchline: "Nothing, it just waved!", Category: CategoryPun},
		{Setup: "Why did the scarecrow win an award?", Punchline: "Because he was outstanding in his field!", Category: CategoryPun},
		{Setup: "What do you call cheese that isn't yours?", Punchline: "Nacho cheese!", Category: CategoryFood},
		{Setup: "Why did the bicycle fall over?", Punchline: "It was two-tired!", Category: CategoryPun},
		{Setup: "What do you call a belt made of watches?", Punchline: "A waist of time!", Category: CategoryPun},
		{Setup: "Why don't eggs tell jokes?", Punchline: "They'd crack each other up!", Category: CategoryFood},
		{Setup: "What did one plate say to the other plate?", Punchline: "Tonight, dinner's on me!", Category: CategoryFood},
		{Setup: "Why did the math book look sad?", Punchline: "Because it had too many problems!", Category: CategorySchool},
	}
}
