package types

// DrawReason distinguishes the ways a game can end drawn.
type DrawReason int8

const (
	NoDraw DrawReason = iota
	FiftyMoveRule
	InsufficientMaterial
	ThreeFoldRepetition
	Stalemate
)

func (r DrawReason) String() string {
	switch r {
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreeFoldRepetition:
		return "threefold repetition"
	case Stalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// MoveResultKind classifies the state of the game immediately after a move.
type MoveResultKind int8

const (
	ResultNone MoveResultKind = iota
	ResultCheck
	ResultCheckmate
	ResultDraw
)

// MoveResult is the terminal/non-terminal classification handed back to a
// driver after make_move, mirroring the values a search needs to stop on.
type MoveResult struct {
	Kind   MoveResultKind
	Reason DrawReason // only meaningful when Kind == ResultDraw
}

func (r MoveResult) String() string {
	switch r.Kind {
	case ResultCheckmate:
		return "checkmate"
	case ResultCheck:
		return "check"
	case ResultDraw:
		return "draw (" + r.Reason.String() + ")"
	default:
		return "none"
	}
}

// ValueType tags how a transposition-table score bounds the true score.
type ValueType uint8

const (
	ValueTypeNone ValueType = iota
	Exact
	LowerBound
	UpperBound
)

func (vt ValueType) String() string {
	switch vt {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "none"
	}
}

// Key is a Zobrist hash key.
type Key uint64
