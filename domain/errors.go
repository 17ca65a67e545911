package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrUnimplemented = errors.New("Unimplemented")

	// canonicalization and input validation, always rejected before any
	// external call is attempted
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidSerial       = errors.New("invalid serial number")
	ErrPrecisionLoss       = errors.New("conversion would lose sub-unit precision")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")

	// ErrChainRejected is returned when the ledger call reverted or its
	// receipt carries a non-success status. A prior sub-step, e.g. an
	// allowance grant, is not rolled back.
	ErrChainRejected = errors.New("chain call rejected")
	// ErrNotListed is returned by the pre-flight read when the on-chain
	// listing is not open for funding
	ErrNotListed = errors.New("listing is not open on chain")
	// ErrSettlementMismatch signals that on-chain state after a successful
	// call does not match the expected outcome. Requires the reconciliation
	// sweep or manual intervention.
	ErrSettlementMismatch = errors.New("on-chain state does not match expected outcome")
	// ErrAllowanceFailed is returned when the collateral allowance approval
	// fails, before any loan issuance is attempted
	ErrAllowanceFailed = errors.New("collateral allowance approval failed")

	// ErrInvalidStateTransition guards the lifecycle state machines: once a
	// listing or loan reached a terminal state no operation may advance it.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrConcurrentModification is returned when the guarded index write
	// finds the document no longer in its expected state. The on-chain
	// effect already happened, so the caller must not resubmit.
	ErrConcurrentModification = errors.New("document state changed concurrently")
)
