package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/blockqueue/internal/game"
	"github.com/robalobadob/blockqueue/internal/messages"
	"github.com/robalobadob/blockqueue/internal/piece"
)

// zeros always draws the first symbol, so every piece is an I.
type zeros struct{}

func (zeros) IntN(int) int { return 0 }

func run(t *testing.T, lang, input string) (string, *game.Controller) {
	t.Helper()
	msgs, err := messages.Load(lang, "")
	require.NoError(t, err)
	ctrl := game.New(piece.NewGenerator(zeros{}))

	var out bytes.Buffer
	require.NoError(t, New(ctrl, msgs, strings.NewReader(input), &out).Run())
	return out.String(), ctrl
}

func TestRender(t *testing.T) {
	msgs, err := messages.Load("en", "")
	require.NoError(t, err)

	snap := game.Snapshot{
		Queue: []piece.Piece{piece.New(piece.SymbolI, 1), piece.New(piece.SymbolO, 2)},
	}
	got := Render(snap, msgs)
	assert.Contains(t, got, "CURRENT GAME STATE")
	assert.Contains(t, got, "Piece queue\t[I 1] [O 2]\n")
	assert.Contains(t, got, "Reserve stack (Top -> Base)\t(empty)\n")
}

func TestRender_Portuguese(t *testing.T) {
	msgs, err := messages.Load("pt", "")
	require.NoError(t, err)

	got := Render(game.Snapshot{Stack: []piece.Piece{piece.New(piece.SymbolT, 7)}}, msgs)
	assert.Contains(t, got, "Fila de pecas\t(vazia)\n")
	assert.Contains(t, got, "Pilha de reserva (Topo -> Base)\t[T 7]\n")
}

func TestMenu(t *testing.T) {
	msgs, err := messages.Load("en", "")
	require.NoError(t, err)
	got := Menu(msgs)
	for _, opt := range []string{"1 - ", "2 - ", "3 - ", "4 - ", "5 - ", "0 - "} {
		assert.Contains(t, got, opt)
	}
	assert.True(t, strings.HasSuffix(got, "Choice: "))
}

func TestRun_PlayThenQuit(t *testing.T) {
	out, ctrl := run(t, "en", "1\n0\n")

	assert.Contains(t, out, "Piece queue\t[I 0] [I 1] [I 2] [I 3] [I 4]\n")
	assert.Contains(t, out, "Piece played: [I 0]")
	assert.Contains(t, out, "Piece queue\t[I 1] [I 2] [I 3] [I 4] [I 5]\n")
	assert.True(t, strings.HasSuffix(out, "Ending the game...\n"))
	assert.Equal(t, 2, ctrl.Commands())
}

func TestRun_ReserveSwapAndUse(t *testing.T) {
	out, ctrl := run(t, "en", "2\n4\n3\n0\n")

	assert.Contains(t, out, "Piece reserved: [I 0]")
	assert.Contains(t, out, "Reserve stack (Top -> Base)\t[I 0]\n")
	assert.Contains(t, out, "Swapped the queue front with the stack top.")
	assert.Contains(t, out, "Reserve stack (Top -> Base)\t[I 1]\n")
	assert.Contains(t, out, "Piece queue\t[I 0] [I 2] [I 3] [I 4] [I 5]\n")
	assert.Contains(t, out, "Reserved piece used: [I 1]")
	assert.Empty(t, ctrl.Snapshot().Stack)
}

func TestRun_Diagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"invalid_input", "abc\n0\n", "Invalid input. Try again."},
		{"blank_line", "\n0\n", "Invalid input. Try again."},
		{"unrecognized", "7\n0\n", "Invalid option!"},
		{"use_empty_stack", "3\n0\n", "No reserved piece to use."},
		{"swap_empty_stack", "4\n0\n", "Cannot swap! Queue or stack empty."},
		{"batch_insufficient", "2\n5\n0\n", "Not enough pieces for a multiple swap."},
		{"stack_full", "2\n2\n2\n2\n0\n", "Stack full! Cannot reserve more pieces."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := run(t, "en", tt.input)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRun_RejectedCommandLeavesState(t *testing.T) {
	msgs, err := messages.Load("en", "")
	require.NoError(t, err)
	ctrl := game.New(piece.NewGenerator(zeros{}))
	before := ctrl.Snapshot()

	var out bytes.Buffer
	require.NoError(t, New(ctrl, msgs, strings.NewReader("x\n9\n3\n4\n5\n"), &out).Run())
	assert.Equal(t, before, ctrl.Snapshot())
	assert.Equal(t, 0, ctrl.Commands())
}

func TestRun_BatchSwap(t *testing.T) {
	out, ctrl := run(t, "en", "2\n2\n2\n5\n0\n")

	assert.Contains(t, out, "Swapped the first 3 of the queue with the 3 of the stack.")
	snap := ctrl.Snapshot()
	require.Len(t, snap.Queue, game.QueueSize)
	require.Len(t, snap.Stack, game.StackSize)
	assert.Equal(t, []int{2, 1, 0}, []int{snap.Queue[0].ID, snap.Queue[1].ID, snap.Queue[2].ID})
	assert.Equal(t, []int{3, 4, 5}, []int{snap.Stack[0].ID, snap.Stack[1].ID, snap.Stack[2].ID})
}

func TestRun_EOFEndsSession(t *testing.T) {
	out, _ := run(t, "pt", "1\n")
	assert.Contains(t, out, "Peca jogada: [I 0]")
	assert.True(t, strings.HasSuffix(out, "Encerrando o jogo...\n"))
}

func TestRun_TrimsWhitespace(t *testing.T) {
	out, _ := run(t, "en", "  1  \n0\n")
	assert.Contains(t, out, "Piece played: [I 0]")
	assert.NotContains(t, out, "Invalid input")
}

func TestRun_OversizedLineIsInvalidInput(t *testing.T) {
	input := strings.Repeat("x", 70000) + "\n1\n0\n"
	out, ctrl := run(t, "en", input)

	invalid := strings.Index(out, "Invalid input. Try again.")
	played := strings.Index(out, "Piece played: [I 0]")
	require.GreaterOrEqual(t, invalid, 0)
	require.GreaterOrEqual(t, played, 0)
	assert.Less(t, invalid, played)
	assert.True(t, strings.HasSuffix(out, "Ending the game...\n"))
	assert.Equal(t, 2, ctrl.Commands())
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	out, ctrl := run(t, "en", "1\n1")
	assert.Contains(t, out, "Piece played: [I 1]")
	assert.True(t, strings.HasSuffix(out, "Ending the game...\n"))
	assert.Equal(t, 2, ctrl.Commands())
}
