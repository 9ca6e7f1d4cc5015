package models

import "errors"

var (
	// ErrNoGame is returned when the games table is empty.
	ErrNoGame = errors.New("no game exists")
	// ErrInvalidPasscode is returned when a join passcode does not match the current game.
	ErrInvalidPasscode = errors.New("invalid passcode")
	// ErrInvalidResetPasscode is returned when a reset passcode is not exactly 4 characters.
	ErrInvalidResetPasscode = errors.New("passcode must be 4 digits")
	// ErrInvalidQuestion is returned for question numbers below 1.
	ErrInvalidQuestion = errors.New("invalid question number")
	// ErrInvalidChosenPoints is returned when a wager is not in the question's allowed list.
	ErrInvalidChosenPoints = errors.New("chosen points not allowed for this question")
	// ErrMixedSubmission is returned when one payload carries both team fields and awarded points.
	ErrMixedSubmission = errors.New("cannot combine answer fields with awarded points")
	// ErrAnswerExists is returned on resubmission that carries no updatable fields.
	ErrAnswerExists = errors.New("answer already submitted")
	// ErrTeamNotFound is returned when a submission references an unknown team.
	ErrTeamNotFound = errors.New("team not found")
)
