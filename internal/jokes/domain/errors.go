package domain

import "errors"

var (
	ErrNoJokesInCategory = errors.New("no jokes found for this category")
	ErrEmptyCatalog      = errors.New("joke catalog is empty")
)
