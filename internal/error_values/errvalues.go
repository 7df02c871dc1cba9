package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exists")
	ErrUserHasHabit  = errors.New("user already has habit with such title")
	ErrWrongOwner    = errors.New("habit belongs to another user")
	ErrOwnerNotFound = errors.New("habit owner doesn't exists")
	// Benign completion guard: the habit was already completed within the
	// last day, nothing was written.
	ErrHabitAlreadyCompleted = errors.New("habit already completed today")
	// Record is missing a required field (e.g. habit without last_updated).
	ErrMalformedRecord = errors.New("record is missing required fields")
	// Benign reset guard: the user was already rolled over today, nothing
	// was written.
	ErrResetAlreadyApplied = errors.New("user already reset today")

	ErrBadgeNotFound = errors.New("badge doesn't exists")

	ErrRequestExists   = errors.New("friend request already exists")
	ErrRequestNotFound = errors.New("friend request doesn't exists")
	ErrAlreadyFriends  = errors.New("users are friends already")
	ErrNotFriends      = errors.New("users are not friends")
	ErrSelfRequest     = errors.New("can't send friend request to yourself")

	ErrChatNotFound   = errors.New("chat doesn't exists")
	ErrNotParticipant = errors.New("user is not a chat participant")

	ErrItemNotFound      = errors.New("shop item doesn't exists")
	ErrItemOwned         = errors.New("item is owned already")
	ErrItemNotOwned      = errors.New("item is not owned")
	ErrInsufficientFunds = errors.New("not enough currency")
)
