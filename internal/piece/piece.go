// internal/piece/piece.go
//
// Core piece value types.
// Defines:
//   - Symbol: the piece shape letter (I, O, T, L) and the Alphabet of all symbols.
//   - Piece: immutable value pairing a symbol with a unique id, rendered as "[I 0]".

package piece

import "fmt"

// Symbol identifies the shape of a piece.
type Symbol byte

const (
	SymbolI Symbol = 'I'
	SymbolO Symbol = 'O'
	SymbolT Symbol = 'T'
	SymbolL Symbol = 'L'
)

// Alphabet lists every symbol, in draw-index order.
var Alphabet = [...]Symbol{SymbolI, SymbolO, SymbolT, SymbolL}

// String renders the symbol as its single letter.
func (s Symbol) String() string { return string(rune(s)) }

// Piece is a labeled unit moved between the queue and the reserve stack.
// Pieces are passed by value and never modified after creation.
type Piece struct {
	Symbol Symbol // Shape letter.
	ID     int    // Unique within a session, increasing in generation order.
}

// New pairs a symbol with an id.
func New(s Symbol, id int) Piece { return Piece{Symbol: s, ID: id} }

// String renders the piece as the "[S id]" token used on screen.
func (p Piece) String() string { return fmt.Sprintf("[%s %d]", p.Symbol, p.ID) }
