package types

// CastlingRights is a 4-bit set of the four individual castling
// privileges, one bit each. Indexing by this composite value (not by its
// popcount) is what keeps Zobrist hashing free of the "different rights,
// same hash" collapse a naive implementation falls into.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleNone = CastlingRights(0)
	CastleAll  = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Has reports whether cr grants the given right.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// Clear returns cr with the given rights removed.
func (cr CastlingRights) Clear(rights CastlingRights) CastlingRights {
	return cr &^ rights
}

// KingsideFor returns the kingside-castling bit for s.
func KingsideFor(s Side) CastlingRights {
	if s == White {
		return CastleWhiteKingside
	}
	return CastleBlackKingside
}

// QueensideFor returns the queenside-castling bit for s.
func QueensideFor(s Side) CastlingRights {
	if s == White {
		return CastleWhiteQueenside
	}
	return CastleBlackQueenside
}

// BothFor returns both castling bits for s.
func BothFor(s Side) CastlingRights {
	return KingsideFor(s) | QueensideFor(s)
}

func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	s := ""
	if cr.Has(CastleWhiteKingside) {
		s += "K"
	}
	if cr.Has(CastleWhiteQueenside) {
		s += "Q"
	}
	if cr.Has(CastleBlackKingside) {
		s += "k"
	}
	if cr.Has(CastleBlackQueenside) {
		s += "q"
	}
	return s
}
