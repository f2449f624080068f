package types

// MoveType tags the small number of move shapes make/undo must special-case.
// What was captured, and which rook moves during castling, are derived from
// board state at the point of use rather than carried in the move itself —
// the position already has to look the target square up to validate the
// move, so encoding it twice would just be another thing to keep in sync.
type MoveType uint32

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a move packed into 32 bits:
//
//	bits 0-5   from square
//	bits 6-11  to square
//	bits 12-13 promotion piece type offset (0=Knight .. 3=Queen)
//	bits 14-15 move type
//	bits 16-31 sort value, used only as a move-ordering scratch field
type Move uint32

const MoveNone Move = 0

const (
	fromShift  = 0
	toShift    = 6
	promoShift = 12
	typeShift  = 14
	sortShift  = 16

	sqMask    = 0x3F
	promoMask = 0x3
	typeMask  = 0x3
)

// promoOffset/promoPiece convert between the 2-bit encoded promotion slot
// and the actual PieceType (Knight..Queen).
func promoOffset(pt PieceType) uint32 { return uint32(pt) - uint32(Knight) }
func promoPiece(off uint32) PieceType { return PieceType(off + uint32(Knight)) }

// NewMove builds a plain (non-promotion) move.
func NewMove(from, to Square, mt MoveType) Move {
	return Move(uint32(from)&sqMask<<fromShift | uint32(to)&sqMask<<toShift | uint32(mt)&typeMask<<typeShift)
}

// NewPromotionMove builds a promotion (or capture-promotion) move.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move(uint32(from)&sqMask<<fromShift |
		uint32(to)&sqMask<<toShift |
		promoOffset(promo)&promoMask<<promoShift |
		uint32(Promotion)&typeMask<<typeShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(uint32(m) >> fromShift & sqMask) }

// To returns the destination square.
func (m Move) To() Square { return Square(uint32(m) >> toShift & sqMask) }

// Type returns the move's tag.
func (m Move) Type() MoveType { return MoveType(uint32(m) >> typeShift & typeMask) }

// PromotionType returns the piece type a pawn promotes to; only meaningful
// when Type() == Promotion.
func (m Move) PromotionType() PieceType { return promoPiece(uint32(m) >> promoShift & promoMask) }

// SortValue returns the move-ordering scratch value set by SetSortValue.
func (m Move) SortValue() int16 { return int16(uint32(m) >> sortShift) }

// SetSortValue returns m with its ordering value replaced; used by move
// generation and ordering, never by make/undo, which only look at the low
// 16 bits.
func (m Move) SetSortValue(v int16) Move {
	return Move(uint32(m)&0x0000FFFF | uint32(uint16(v))<<sortShift)
}

func (m Move) String() string {
	if m == MoveNone {
		return "no-move"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += m.PromotionType().String()
	}
	return s
}
