package routing

import "errors"

var (
	// ErrNoCapabilities names the empty-capability-set condition. No call
	// in this package returns it: SuggestDag reports an empty capability
	// arena as {Confidence: 0} with a nil error.
	ErrNoCapabilities = errors.New("routing: no capabilities registered")

	// ErrUnknownCapability is returned by RecordOutcome and Accept when
	// the referenced capability id is not registered as a capability
	// node.
	ErrUnknownCapability = errors.New("routing: unknown capability")

	// ErrIncompatibleShape is returned by LoadParams when the snapshot's
	// encoded shape does not match the live scorer's Params shape.
	ErrIncompatibleShape = errors.New("routing: incompatible params snapshot shape")

	// ErrQuarantined is returned by every mutating/training call while
	// the engine is in the quarantined state (spec §7: PreconditionFailed
	// and Degenerate failures quarantine the engine; only read paths work
	// until RecoverFromQuarantine is called explicitly).
	ErrQuarantined = errors.New("routing: engine is quarantined, call RecoverFromQuarantine")

	// ErrAcceptMissingArg is returned by Accept when a required
	// ParametersSchema key is absent from both the caller-supplied args
	// and the schema's own defaults.
	ErrAcceptMissingArg = errors.New("routing: accept: missing required argument")

	// ErrAcceptTypeMismatch is returned by Accept when a caller-supplied
	// arg's JSON type does not match its ParametersSchema declaration.
	ErrAcceptTypeMismatch = errors.New("routing: accept: argument type mismatch")
)
