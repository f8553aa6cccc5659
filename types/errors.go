package types

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes a claim can end in.
type ErrorKind uint8

const (
	KindOther ErrorKind = iota
	KindDepositNotIndexed
	KindProofNotReady
	KindGlobalExitRootInvalid
	KindAlreadyClaimed
	KindUnclaimedAssetDependency
	KindPlanInvalid
	KindTargetAddressMismatch
	KindEncodingOverflow
	KindChainRPCError
	KindInsufficientGas
	KindInsufficientAllowance
	KindRetriesExhausted
)

var kindNames = map[ErrorKind]string{
	KindOther:                    "Other",
	KindDepositNotIndexed:        "DepositNotIndexed",
	KindProofNotReady:            "ProofNotReady",
	KindGlobalExitRootInvalid:    "GlobalExitRootInvalid",
	KindAlreadyClaimed:           "AlreadyClaimed",
	KindUnclaimedAssetDependency: "UnclaimedAssetDependency",
	KindPlanInvalid:              "PlanInvalid",
	KindTargetAddressMismatch:    "TargetAddressMismatch",
	KindEncodingOverflow:         "EncodingOverflow",
	KindChainRPCError:            "ChainRpcError",
	KindInsufficientGas:          "InsufficientGas",
	KindInsufficientAllowance:    "InsufficientAllowance",
	KindRetriesExhausted:         "RetriesExhausted",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Retryable reports whether an operation failing with this kind may succeed
// when repeated unchanged after a wait.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindDepositNotIndexed, KindProofNotReady, KindGlobalExitRootInvalid, KindChainRPCError:
		return true
	default:
		return false
	}
}

// Sentinel errors, one per kind, matched by ClaimError.Is.
var (
	ErrOther                    = errors.New("claim failed")
	ErrDepositNotIndexed        = errors.New("deposit not indexed yet")
	ErrProofNotReady            = errors.New("claim proof not ready")
	ErrGlobalExitRootInvalid    = errors.New("global exit root invalid on destination")
	ErrAlreadyClaimed           = errors.New("already claimed")
	ErrUnclaimedAssetDependency = errors.New("message depends on an unclaimed asset deposit")
	ErrPlanInvalid              = errors.New("invalid claim plan")
	ErrTargetAddressMismatch    = errors.New("target address mismatch")
	ErrEncodingOverflow         = errors.New("global index encoding overflow")
	ErrChainRPC                 = errors.New("chain rpc error")
	ErrInsufficientGas          = errors.New("insufficient gas")
	ErrInsufficientAllowance    = errors.New("insufficient allowance")
	ErrRetriesExhausted         = errors.New("retries exhausted")
)

var sentinels = map[ErrorKind]error{
	KindOther:                    ErrOther,
	KindDepositNotIndexed:        ErrDepositNotIndexed,
	KindProofNotReady:            ErrProofNotReady,
	KindGlobalExitRootInvalid:    ErrGlobalExitRootInvalid,
	KindAlreadyClaimed:           ErrAlreadyClaimed,
	KindUnclaimedAssetDependency: ErrUnclaimedAssetDependency,
	KindPlanInvalid:              ErrPlanInvalid,
	KindTargetAddressMismatch:    ErrTargetAddressMismatch,
	KindEncodingOverflow:         ErrEncodingOverflow,
	KindChainRPCError:            ErrChainRPC,
	KindInsufficientGas:          ErrInsufficientGas,
	KindInsufficientAllowance:    ErrInsufficientAllowance,
	KindRetriesExhausted:         ErrRetriesExhausted,
}

// ClaimError is a classified failure of the claim pipeline.
type ClaimError struct {
	Kind ErrorKind
	// Op names the operation that failed, e.g. "getProof" or "claimAsset"
	Op string
	// Selector is the 4-byte revert selector when the failure came from a decoded revert
	Selector [4]byte
	// Reason is the decoded revert reason or error name, if any
	Reason string
	// Last is the kind of the last attempt when Kind is KindRetriesExhausted
	Last ErrorKind
	Err  error
}

// NewError builds a ClaimError of the given kind wrapping err (which may be nil).
func NewError(kind ErrorKind, op string, err error) *ClaimError {
	return &ClaimError{Kind: kind, Op: op, Err: err}
}

// Errorf builds a ClaimError of the given kind with a formatted cause.
func Errorf(kind ErrorKind, op string, format string, args ...interface{}) *ClaimError {
	return &ClaimError{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *ClaimError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Kind == KindRetriesExhausted {
		msg += " (last: " + e.Last.String() + ")"
	}
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	if e.Selector != [4]byte{} {
		msg += fmt.Sprintf(" [selector 0x%x]", e.Selector[:])
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ClaimError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the kind. An exhausted retry also matches
// the sentinel of its last attempt.
func (e *ClaimError) Is(target error) bool {
	if sentinel, ok := sentinels[e.Kind]; ok && sentinel == target {
		return true
	}
	if e.Kind == KindRetriesExhausted {
		if sentinel, ok := sentinels[e.Last]; ok && sentinel == target {
			return true
		}
	}

	return false
}

// Retryable reports whether the failure is transient.
func (e *ClaimError) Retryable() bool {
	return e.Kind.Retryable()
}

// Remediation returns the corrective action for user fixable kinds.
func (e *ClaimError) Remediation() string {
	switch e.Kind {
	case KindUnclaimedAssetDependency:
		return "claim the asset deposit before the message deposit"
	case KindInsufficientGas:
		return "raise the gas limit (--gas-limit) or fund the claimer account"
	case KindInsufficientAllowance:
		return "approve the bridge to spend the token before bridging"
	case KindDepositNotIndexed:
		return "wait for the bridge service to index the source transaction and retry"
	case KindProofNotReady, KindGlobalExitRootInvalid:
		return "wait for the global exit root to reach the destination network and retry"
	case KindRetriesExhausted:
		return "the destination network did not catch up in time, retry later or raise the retry bound"
	case KindTargetAddressMismatch:
		return "check the token address and the bridge-and-call target against the destination network"
	case KindPlanInvalid:
		return "the bridge service returned an inconsistent bundle, verify the source transaction"
	case KindEncodingOverflow:
		return "check the deposit count and source network values"
	case KindChainRPCError:
		return "check the RPC endpoint of the network"
	default:
		return ""
	}
}

// KindOf returns the kind of the first ClaimError in the chain of err.
// Errors outside the taxonomy are KindOther.
func KindOf(err error) ErrorKind {
	var ce *ClaimError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return KindOther
}

// IsRetryable reports whether err is a transient ClaimError.
func IsRetryable(err error) bool {
	var ce *ClaimError
	if errors.As(err, &ce) {
		return ce.Retryable()
	}

	return false
}
