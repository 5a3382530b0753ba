package store

import "errors"

var (
	// ErrEmptyItemID is returned when an item identifier is blank.
	ErrEmptyItemID = errors.New("store: empty item id")
	// ErrUnknownCondition is returned for labels outside the runway condition table.
	ErrUnknownCondition = errors.New("store: unknown runway condition")
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("store: rating must be between 1 and 5")
)
