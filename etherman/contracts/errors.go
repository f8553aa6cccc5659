package contracts

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
)

const selectorLength = 4

// Names of the bridge errors the claim flow reacts to
const (
	ErrNameAlreadyClaimed             = "AlreadyClaimed"
	ErrNameGlobalExitRootInvalid      = "GlobalExitRootInvalid"
	ErrNameMessageFailed              = "MessageFailed"
	ErrNameInvalidSmtProof            = "InvalidSmtProof"
	ErrNameERC20InsufficientAllowance = "ERC20InsufficientAllowance"
	// ErrNameError is the solidity Error(string) revert
	ErrNameError = "Error"
	// ErrNamePanic is the solidity Panic(uint256) revert
	ErrNamePanic = "Panic"
)

var (
	PolygonZkEVMBridgeV2MetaData = &bind.MetaData{ABI: PolygonZkEVMBridgeV2ABI}

	errorStringSelector = crypto.Keccak256([]byte("Error(string)"))[:selectorLength]
	panicSelector       = crypto.Keccak256([]byte("Panic(uint256)"))[:selectorLength]
)

// Revert is a decoded revert payload
type Revert struct {
	Selector [4]byte
	// Name is the custom error name, ErrNameError or ErrNamePanic, empty when unknown
	Name string
	// Reason is the message of Error(string) and Panic(uint256)
	Reason string
	// Args are the custom error arguments
	Args interface{}
}

func (r *Revert) String() string {
	switch {
	case r.Name == "":
		return fmt.Sprintf("unknown revert 0x%x", r.Selector[:])
	case r.Reason != "":
		return fmt.Sprintf("%s(%q)", r.Name, r.Reason)
	default:
		return r.Name + "()"
	}
}

// DecodeRevert decodes revert data against the bridge errors. It returns false
// when data is too short to carry a selector.
func DecodeRevert(data []byte) (*Revert, bool) {
	if len(data) < selectorLength {
		return nil, false
	}
	rev := &Revert{}
	copy(rev.Selector[:], data[:selectorLength])

	if bytes.Equal(rev.Selector[:], errorStringSelector) || bytes.Equal(rev.Selector[:], panicSelector) {
		rev.Name = ErrNameError
		if bytes.Equal(rev.Selector[:], panicSelector) {
			rev.Name = ErrNamePanic
		}
		if reason, err := abi.UnpackRevert(data); err == nil {
			rev.Reason = reason
		}

		return rev, true
	}

	parsed, err := PolygonZkEVMBridgeV2MetaData.GetAbi()
	if err != nil {
		return rev, true
	}
	for name, e := range parsed.Errors {
		if !bytes.Equal(e.ID[:selectorLength], rev.Selector[:]) {
			continue
		}
		rev.Name = name
		if args, err := e.Unpack(data); err == nil {
			rev.Args = args
		}

		break
	}

	return rev, true
}

// ErrorSelector returns the selector of a bridge error by name
func ErrorSelector(name string) ([4]byte, error) {
	var sel [4]byte
	parsed, err := PolygonZkEVMBridgeV2MetaData.GetAbi()
	if err != nil {
		return sel, err
	}
	e, ok := parsed.Errors[name]
	if !ok {
		return sel, fmt.Errorf("unknown bridge error %s", name)
	}
	copy(sel[:], e.ID[:selectorLength])

	return sel, nil
}
