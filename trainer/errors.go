package trainer

import "errors"

var (
	// ErrOptionViolation is returned by NewTrainer when a functional
	// option was given an invalid value.
	ErrOptionViolation = errors.New("trainer: invalid option")

	// ErrInsufficientExamples is returned by Train when fewer than two
	// examples are supplied, whatever their outcome labels — there is nothing to rank
	// against. Non-fatal: the trainer's state is left unchanged.
	ErrInsufficientExamples = errors.New("trainer: fewer than two training examples")

	// ErrDegenerateLoss is returned by Train when the loss was non-finite
	// for DegenerateLossStreakLimit consecutive mini-batch steps. The
	// trainer rolls back to the Params snapshot taken before the call and
	// returns this error; non-fatal.
	ErrDegenerateLoss = errors.New("trainer: degenerate (non-finite) loss, params rolled back")

	// ErrAlreadyTraining is returned when Train is called while another
	// Train call is already in progress on the same Trainer.
	ErrAlreadyTraining = errors.New("trainer: training already in progress")

	// ErrNotInitialized is returned by Train when the trainer has not yet
	// transitioned out of Uninitialized via Initialize.
	ErrNotInitialized = errors.New("trainer: not initialized")
)
