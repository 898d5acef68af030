package game

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Game operations. Compare with errors.Is.
var (
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game already started")
	ErrAlreadyStopped = errors.New("game already stopped")

	// ErrGameOver wraps ErrNotStarted: a finished game accepts no moves.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrNotStarted)

	ErrNoPieceAtSource = errors.New("no piece at source square")
	ErrWrongTurn       = errors.New("cannot move the opponent's piece")
	ErrIllegalMove     = errors.New("illegal move")
	ErrSelfCheck       = errors.New("move leaves own general in check")
	ErrNoHistory       = errors.New("no move to retract")
)

// Persistence failure classes, reachable through errors.Is on a *PersistError.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o failure")
	ErrDecode       = errors.New("decode failure")
)

type PersistKind int

const (
	FileNotFound PersistKind = iota
	IOFailure
	DecodeFailure
)

func (k PersistKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case IOFailure:
		return "i/o failure"
	case DecodeFailure:
		return "decode failure"
	default:
		return "unknown"
	}
}

func (k PersistKind) sentinel() error {
	switch k {
	case FileNotFound:
		return ErrFileNotFound
	case DecodeFailure:
		return ErrDecode
	default:
		return ErrIO
	}
}

// PersistError describes a failed save or load. Err is the underlying cause.
type PersistError struct {
	Op   string // "save" or "load"
	Path string
	Kind PersistKind
	Err  error
}

func (e *PersistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *PersistError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}
