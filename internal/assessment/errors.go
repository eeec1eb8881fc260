package assessment

import "errors"

var (
	// ErrEmptyItemSource is returned when a session is started without items.
	ErrEmptyItemSource = errors.New("no items to assess")
	// ErrInvalidResponseIndex is returned when the selected option does not exist
	// or the current item does not take answers.
	ErrInvalidResponseIndex = errors.New("invalid response index")
	// ErrSessionCompleted is returned when answering after the session completed.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrInvalidItem is returned for items that cannot be assessed.
	ErrInvalidItem = errors.New("invalid item")
)
