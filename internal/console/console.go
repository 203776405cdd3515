// internal/console/console.go
//
// Interactive read–dispatch–render loop.
// Responsibilities:
//   - Render the queue and stack, then the menu, before every read.
//   - Read one command per line of any length; bad lines are consumed and reported.
//   - Dispatch to the controller and translate errors into catalog messages.
//
// Notes:
//   - Quit and end of input both end the loop normally.
//   - Nothing here mutates game state directly; the controller owns it.

package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/blockqueue/internal/container"
	"github.com/robalobadob/blockqueue/internal/game"
	"github.com/robalobadob/blockqueue/internal/messages"
)

// Console bundles the controller, message catalog and I/O streams.
type Console struct {
	ctrl *game.Controller
	msgs *messages.Catalog
	in   *bufio.Reader
	out  io.Writer
}

// New constructs a Console reading commands from in and writing to out.
func New(ctrl *game.Controller, msgs *messages.Catalog, in io.Reader, out io.Writer) *Console {
	return &Console{
		ctrl: ctrl,
		msgs: msgs,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run loops until Quit or end of input. It returns only read errors.
func (c *Console) Run() error {
	for {
		c.print(Render(c.ctrl.Snapshot(), c.msgs))
		c.print(Menu(c.msgs))

		// A final line without a newline arrives together with io.EOF.
		line, err := c.in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug().Str("session", c.ctrl.ID()).Msg("input closed")
				c.print("\n" + c.msgs.Text(messages.Goodbye) + "\n")
				return nil
			}
			return errors.Wrap(err, "console: read command")
		}

		if quit := c.step(strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

// step handles one input line and reports whether the session is over.
func (c *Console) step(line string) bool {
	cmd, err := game.ParseCommand(line)
	if err != nil {
		c.print(c.diagnose(cmd, err) + "\n")
		return false
	}

	res, err := c.ctrl.Dispatch(cmd)
	if err != nil {
		c.print(c.diagnose(cmd, err) + "\n")
		return false
	}
	c.print(c.report(res) + "\n")
	return res.Quit
}

// report formats the feedback line for a completed command.
func (c *Console) report(res game.Result) string {
	switch res.Command {
	case game.CmdPlay:
		return "\n" + c.msgs.Format(messages.Played, res.Piece)
	case game.CmdReserve:
		return "\n" + c.msgs.Format(messages.Reserved, res.Piece)
	case game.CmdUseReserved:
		return "\n" + c.msgs.Format(messages.Used, res.Piece)
	case game.CmdSwapCurrent:
		return "\n" + c.msgs.Text(messages.Swapped)
	case game.CmdSwapBatch:
		return "\n" + c.msgs.Text(messages.BatchSwapped)
	default:
		return c.msgs.Text(messages.Goodbye)
	}
}

// diagnose picks the catalog message for a rejected command.
func (c *Console) diagnose(cmd game.Command, err error) string {
	key := ""
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		key = messages.ErrInvalidInput
	case errors.Is(err, game.ErrUnrecognizedCommand):
		key = messages.ErrUnrecognized
	case errors.Is(err, game.ErrInsufficientPieces):
		key = messages.ErrBatch
	case errors.Is(err, container.ErrContainerFull):
		key = messages.ErrStackFull
	case errors.Is(err, container.ErrEmptyContainer):
		key = emptyKeys[cmd]
	}
	if key == "" {
		return err.Error()
	}
	return c.msgs.Text(key)
}

// emptyKeys maps each command to its "nothing to work with" message.
var emptyKeys = map[game.Command]string{
	game.CmdPlay:        messages.ErrPlayEmpty,
	game.CmdReserve:     messages.ErrReserveEmpty,
	game.CmdUseReserved: messages.ErrStackEmpty,
	game.CmdSwapCurrent: messages.ErrSwapEmpty,
}

func (c *Console) print(s string) { _, _ = io.WriteString(c.out, s) }
