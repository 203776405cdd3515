// internal/console/render.go
//
// Text rendering of the game state and menu.

package console

import (
	"strings"

	"github.com/robalobadob/blockqueue/internal/game"
	"github.com/robalobadob/blockqueue/internal/messages"
	"github.com/robalobadob/blockqueue/internal/piece"
)

// Render draws the banner, the queue (front first) and the stack (top first).
func Render(snap game.Snapshot, msgs *messages.Catalog) string {
	var b strings.Builder
	rule := msgs.Text(messages.BannerRule)

	b.WriteString("\n" + rule + "\n")
	b.WriteString(msgs.Text(messages.BannerTitle) + "\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(msgs.Text(messages.QueueLabel) + "\t" + tokens(snap.Queue, msgs) + "\n")
	b.WriteString(msgs.Text(messages.StackLabel) + "\t" + tokens(snap.Stack, msgs) + "\n")
	return b.String()
}

// Menu lists the options 0–5 followed by the prompt.
func Menu(msgs *messages.Catalog) string {
	var b strings.Builder
	b.WriteString("\n" + msgs.Text(messages.MenuHeader) + "\n")
	for _, k := range []string{
		messages.MenuPlay,
		messages.MenuReserve,
		messages.MenuUse,
		messages.MenuSwap,
		messages.MenuBatch,
		messages.MenuQuit,
	} {
		b.WriteString(msgs.Text(k) + "\n")
	}
	b.WriteString(msgs.Text(messages.Prompt))
	return b.String()
}

// tokens joins "[S id]" tokens, or returns the empty literal.
func tokens(ps []piece.Piece, msgs *messages.Catalog) string {
	if len(ps) == 0 {
		return msgs.Text(messages.Empty)
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
