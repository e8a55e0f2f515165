package consensus

import "errors"

var (
	// ErrLookupFailed marks a validation that could not reach a verdict because storage was unavailable.
	ErrLookupFailed = errors.New("output lookup failed")

	ErrUnresolvedInput  = errors.New("input does not resolve to a known output")
	ErrDoubleSpend      = errors.New("input spends an output that is already spent")
	ErrOverspend        = errors.New("outputs exceed inputs")
	ErrAmountOverflow   = errors.New("amount overflow")
	ErrNegativeOutput   = errors.New("negative output amount")
	ErrScriptFailed     = errors.New("unlock script rejected")
	ErrScriptMismatch   = errors.New("unlock script does not belong to input")
	ErrHeaderNotLinked  = errors.New("header does not extend the tip")
	ErrHeaderTimeTooOld = errors.New("header timestamp not after median time past")
	ErrHeaderTimeTooNew = errors.New("header timestamp too far in the future")
	ErrBadDifficulty    = errors.New("header target outside pow limit")
	ErrHighHash         = errors.New("header hash above target")
)
