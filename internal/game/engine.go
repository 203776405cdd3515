// internal/game/engine.go
//
// Controller for a single piece-management session.
// Responsibilities:
//   - Own the upcoming-piece queue, the reserve stack and the id counter.
//   - Execute menu commands (play, reserve, use reserved, swap, batch swap).
//   - Keep the queue full after every piece that leaves it.
//
// Notes:
//   - Every rejected command returns an error before touching either
//     container, so failures never leave partial state behind.
//   - Refill after a removal cannot hit a full queue; if it ever does the
//     piece is dropped and the event is logged at warn level.

package game

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/blockqueue/internal/container"
	"github.com/robalobadob/blockqueue/internal/piece"
)

// Controller executes commands against one queue and one stack.
type Controller struct {
	id     string
	queue  *container.Queue[piece.Piece]
	stack  *container.Stack[piece.Piece]
	gen    *piece.Generator
	nextID int
	logger zerolog.Logger

	commands int // successful commands, for the exit summary
}

// New constructs a controller with a full queue (ids 0..QueueSize-1) and an empty stack.
func New(gen *piece.Generator) *Controller {
	id := xid.New().String()
	c := &Controller{
		id:     id,
		queue:  container.NewQueue[piece.Piece](QueueSize),
		stack:  container.NewStack[piece.Piece](StackSize),
		gen:    gen,
		logger: log.With().Str("session", id).Logger(),
	}
	for !c.queue.IsFull() {
		c.refill()
	}
	c.logger.Info().Str("queue", fmt.Sprint(c.queue.Items())).Msg("session started")
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// Generated returns how many pieces this session has created.
func (c *Controller) Generated() int { return c.nextID }

// Commands returns how many commands completed successfully.
func (c *Controller) Commands() int { return c.commands }

// Snapshot copies the current contents of both containers.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Queue: c.queue.Items(), Stack: c.stack.Items()}
}

// Dispatch runs cmd and reports what happened.
func (c *Controller) Dispatch(cmd Command) (Result, error) {
	res := Result{Command: cmd}
	var err error

	switch cmd {
	case CmdQuit:
		res.Quit = true
	case CmdPlay:
		res.Piece, err = c.Play()
	case CmdReserve:
		res.Piece, err = c.Reserve()
	case CmdUseReserved:
		res.Piece, err = c.UseReserved()
	case CmdSwapCurrent:
		err = c.SwapCurrent()
	case CmdSwapBatch:
		err = c.SwapBatch()
	default:
		err = errors.Wrapf(ErrUnrecognizedCommand, "option %d", int(cmd))
	}

	if err != nil {
		c.logger.Debug().Err(err).Stringer("command", cmd).Msg("command rejected")
		return Result{Command: cmd}, err
	}
	c.commands++
	ev := c.logger.Debug().Stringer("command", cmd)
	if res.Piece != (piece.Piece{}) {
		ev = ev.Stringer("piece", res.Piece)
	}
	ev.Msg("command done")
	return res, nil
}

// Play removes the front piece and refills the queue.
func (c *Controller) Play() (piece.Piece, error) {
	p, err := c.queue.Dequeue()
	if err != nil {
		return piece.Piece{}, errors.Wrap(err, "play")
	}
	c.refill()
	return p, nil
}

// Reserve moves the front piece onto the stack and refills the queue.
// A full stack rejects the move without dequeuing.
func (c *Controller) Reserve() (piece.Piece, error) {
	if c.queue.IsEmpty() {
		return piece.Piece{}, errors.Wrap(container.ErrEmptyContainer, "reserve")
	}
	if c.stack.IsFull() {
		return piece.Piece{}, errors.Wrap(container.ErrContainerFull, "reserve")
	}
	p, _ := c.queue.Dequeue()
	_ = c.stack.Push(p)
	c.refill()
	return p, nil
}

// UseReserved pops the top of the stack. No replacement is generated.
func (c *Controller) UseReserved() (piece.Piece, error) {
	p, err := c.stack.Pop()
	if err != nil {
		return piece.Piece{}, errors.Wrap(err, "use reserved")
	}
	return p, nil
}

// SwapCurrent exchanges the queue front with the stack top.
func (c *Controller) SwapCurrent() error {
	if c.queue.IsEmpty() || c.stack.IsEmpty() {
		return errors.Wrap(container.ErrEmptyContainer, "swap current")
	}
	c.exchange(0)
	return nil
}

// SwapBatch exchanges the first BatchSize queue pieces with the top
// BatchSize stack pieces, pairing queue position i with stack depth i.
func (c *Controller) SwapBatch() error {
	if c.queue.Len() < BatchSize || c.stack.Len() < BatchSize {
		return errors.Wrapf(ErrInsufficientPieces, "queue %d, stack %d", c.queue.Len(), c.stack.Len())
	}
	for i := 0; i < BatchSize; i++ {
		c.exchange(i)
	}
	return nil
}

// exchange swaps queue position i with stack depth i. Both must exist.
func (c *Controller) exchange(i int) {
	q, _ := c.queue.At(i)
	s, _ := c.stack.At(i)
	c.queue.Set(i, s)
	c.stack.Set(i, q)
}

// refill appends a freshly generated piece to the queue.
func (c *Controller) refill() {
	p := c.gen.Next(c.nextID)
	c.nextID++
	if err := c.queue.Enqueue(p); err != nil {
		c.logger.Warn().Err(err).Stringer("piece", p).Msg("refill dropped piece")
	}
}
