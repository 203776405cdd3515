// internal/game/types.go
//
// Core type definitions for the piece controller.
// Defines:
//   - Command: the menu options (0–5).
//   - Result: what a successfully dispatched command did.
//   - Snapshot: a copy of both containers for rendering and comparisons.
//   - Sentinel errors reported back to the console.

package game

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/robalobadob/blockqueue/internal/piece"
)

const (
	QueueSize = 5 // capacity of the upcoming-piece queue
	StackSize = 3 // capacity of the reserve stack
	BatchSize = 3 // pieces exchanged by SwapBatch
)

var (
	// ErrInsufficientPieces is returned when SwapBatch lacks BatchSize pieces on either side.
	ErrInsufficientPieces = errors.New("insufficient pieces for batch swap")

	// ErrInvalidInput is returned when a command token is not an integer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnrecognizedCommand is returned for integers outside the menu.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)

// Command is a menu option.
type Command int

const (
	CmdQuit Command = iota
	CmdPlay
	CmdReserve
	CmdUseReserved
	CmdSwapCurrent
	CmdSwapBatch
)

var commandNames = map[Command]string{
	CmdQuit:        "quit",
	CmdPlay:        "play",
	CmdReserve:     "reserve",
	CmdUseReserved: "use_reserved",
	CmdSwapCurrent: "swap_current",
	CmdSwapBatch:   "swap_batch",
}

// String returns a stable lowercase name, used in logs.
func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "command(" + strconv.Itoa(int(c)) + ")"
}

// ParseCommand converts a raw input token into a Command.
// Non-integers yield ErrInvalidInput; integers outside 0–5 yield ErrUnrecognizedCommand.
func ParseCommand(token string) (Command, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "parse %q", token)
	}
	c := Command(n)
	if _, ok := commandNames[c]; !ok {
		return 0, errors.Wrapf(ErrUnrecognizedCommand, "option %d", n)
	}
	return c, nil
}

// Result describes a command that completed.
type Result struct {
	Command Command     // Command that ran.
	Piece   piece.Piece // Piece played, reserved or used; zero for swaps and quit.
	Quit    bool        // True once the session should end.
}

// Snapshot holds both containers in display order:
// Queue front first, Stack top first.
type Snapshot struct {
	Queue []piece.Piece
	Stack []piece.Piece
}
