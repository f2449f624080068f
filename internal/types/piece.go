package types

import "fmt"

// Side is one of the two players.
type Side int8

const (
	White Side = iota
	Black
	SideNone
	SideLength = SideNone
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return s ^ 1
}

// IsValid reports whether s is White or Black.
func (s Side) IsValid() bool {
	return s == White || s == Black
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// PieceType is a chess piece kind, independent of side.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNone
	PieceTypeLength = PieceTypeNone
)

// IsSlider reports whether pt slides along rays (bishop, rook, queen are
// a single contiguous range so this is one comparison, not a set lookup).
func (pt PieceType) IsSlider() bool {
	return pt >= Bishop && pt <= Queen
}

var pieceTypeChar = [PieceTypeLength]string{"p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string {
	if pt < Pawn || pt >= PieceTypeNone {
		return "-"
	}
	return pieceTypeChar[pt]
}

// Value is a centipawn-scaled signed score, positive favouring White.
type Value int32

const (
	ValueZero Value = 0
	ValueNA   Value = 1 << 30
	// ValueMate is the score assigned at the mating ply; the search reports
	// ValueMate - ply so shallower mates compare higher than deeper ones.
	ValueMate  Value = 30000
	ValueInf   Value = ValueMate + 1
	ValueDraw  Value = 0
)

// PieceValue is the static material worth of each piece type, used as the
// evaluator's material term and as the promotion bonus in move ordering
// (MVV-LVA itself ranks by piece type, not by these values).
var PieceValue = [PieceTypeLength]Value{100, 320, 330, 500, 900, 20000}

// Piece is a (side, piece type) pair packed into one byte: Piece = side*6 + pt,
// with PieceNone as the sentinel for "empty square".
type Piece int8

const PieceNone Piece = Piece(SideLength) * Piece(PieceTypeLength)

// MakePiece packs a side and piece type into a Piece.
func MakePiece(s Side, pt PieceType) Piece {
	if !s.IsValid() || pt < Pawn || pt >= PieceTypeNone {
		return PieceNone
	}
	return Piece(s)*Piece(PieceTypeLength) + Piece(pt)
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PieceTypeNone
	}
	return PieceType(int(p) % int(PieceTypeLength))
}

// SideOf returns the owning side of p.
func (p Piece) SideOf() Side {
	if p == PieceNone {
		return SideNone
	}
	return Side(int(p) / int(PieceTypeLength))
}

func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	s := p.TypeOf().String()
	if p.SideOf() == White {
		return fmt.Sprintf("%c", []byte(s)[0]-32) // upper case for White
	}
	return s
}
