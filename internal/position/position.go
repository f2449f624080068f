//
// chesscore - a chess engine core written in Go
//

// Package position holds the authoritative board representation: twelve
// piece bitboards, game state (side to move, castling rights, en-passant
// square, move counters), the incrementally maintained Zobrist key, and
// the repetition-occurrence map. Mutation happens only through MakeMove
// and UndoMove.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/ofalvai/chesscore/internal/attacks"
	"github.com/ofalvai/chesscore/internal/chesslog"
	. "github.com/ofalvai/chesscore/internal/types"
	"github.com/ofalvai/chesscore/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = chesslog.GetLog("position")
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoInfo carries exactly the scalars that cannot be cheaply recomputed
// on undo: the caller (always the search, which already holds them on its
// own stack) must not need to, but Position keeps its own stack too so
// undo never requires help from outside.
type undoInfo struct {
	move               Move
	captured           PieceType
	castlingRights      CastlingRights
	epSquare           Square
	halfMoveClock      int
	lastCaptureHalfMove int
	key                Key
	wasThreefold       bool
}

// Position is the mutable board + game state. Not safe for concurrent
// mutation; a search worker owns one full clone per goroutine.
type Position struct {
	pieceBb  [SideLength][PieceTypeLength]Bitboard
	occupied [SideLength]Bitboard
	allOcc   Bitboard
	board    [SqLength]Piece

	sideToMove     Side
	castlingRights CastlingRights
	epSquare       Square

	halfMoveClock       int // moves since the last capture or pawn move
	moveNumber          int
	lastCaptureHalfMove int
	ply                 int

	key Key
	// occurrences maps a zobrist key to how many times it has been reached
	// in this game's history; never shrinks except on undo.
	occurrences map[Key]int

	history []undoInfo
}

// NewStandard returns the standard chess starting position.
func NewStandard() *Position {
	p, err := NewFromFen(StartFen)
	if err != nil {
		panic(err) // the constant above is not allowed to be malformed
	}
	return p
}

// NewFromConfig builds a position from an explicit placement, side to
// move, castling rights and en-passant square, bypassing FEN entirely.
func NewFromConfig(placement [SqLength]Piece, sideToMove Side, cr CastlingRights, ep Square) *Position {
	p := &Position{
		board:          placement,
		sideToMove:     sideToMove,
		castlingRights: cr,
		epSquare:       ep,
		moveNumber:     1,
		occurrences:    make(map[Key]int, 64),
	}
	for sq := SqA1; sq < SqLength; sq++ {
		pc := placement[sq]
		if pc == PieceNone {
			continue
		}
		p.pieceBb[pc.SideOf()][pc.TypeOf()] |= sq.Bb()
	}
	p.recomputeOccupancy()
	p.key = zobrist.Compute(p.board, p.sideToMove, p.castlingRights, p.epSquare)
	p.occurrences[p.key] = 1
	return p
}

// NewFromFen parses a FEN string into a Position.
func NewFromFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: malformed fen %q: need at least 4 fields", fen)
	}

	var board [SqLength]Piece
	for i := range board {
		board[i] = PieceNone
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: malformed fen %q: need 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pt, side := pieceFromFenChar(byte(c))
			if pt == PieceTypeNone {
				return nil, fmt.Errorf("position: malformed fen %q: bad piece char %q", fen, c)
			}
			if !f.IsValid() {
				return nil, fmt.Errorf("position: malformed fen %q: rank overflow", fen)
			}
			board[SquareOf(f, r)] = MakePiece(side, pt)
			f++
		}
	}

	side := White
	if fields[1] == "b" {
		side = Black
	}

	var cr CastlingRights
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				cr |= CastleWhiteKingside
			case 'Q':
				cr |= CastleWhiteQueenside
			case 'k':
				cr |= CastleBlackKingside
			case 'q':
				cr |= CastleBlackQueenside
			}
		}
	}

	ep := SqNone
	if fields[3] != "-" {
		ep = ParseSquare(fields[3])
	}

	p := NewFromConfig(board, side, cr, ep)
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.moveNumber = n
		}
	}
	return p, nil
}

func pieceFromFenChar(c byte) (PieceType, Side) {
	side := White
	lc := c
	if c >= 'a' && c <= 'z' {
		side = Black
	} else {
		lc = c + 32
	}
	switch lc {
	case 'p':
		return Pawn, side
	case 'n':
		return Knight, side
	case 'b':
		return Bishop, side
	case 'r':
		return Rook, side
	case 'q':
		return Queen, side
	case 'k':
		return King, side
	default:
		return PieceTypeNone, side
	}
}

func (p *Position) recomputeOccupancy() {
	p.occupied[White] = 0
	p.occupied[Black] = 0
	for pt := Pawn; pt < PieceTypeNone; pt++ {
		p.occupied[White] |= p.pieceBb[White][pt]
		p.occupied[Black] |= p.pieceBb[Black][pt]
	}
	p.allOcc = p.occupied[White] | p.occupied[Black]
}

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() Side { return p.sideToMove }

// CastlingRights returns the currently held castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EpSquare returns the current en-passant target square, or SqNone.
func (p *Position) EpSquare() Square { return p.epSquare }

// Key returns the current Zobrist key.
func (p *Position) Key() Key { return p.key }

// Ply returns the number of half-moves played since this Position was
// created (not the same as moveNumber, which is FEN's full-move counter).
func (p *Position) Ply() int { return p.ply }

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// Occupied returns the union of both sides' occupied squares.
func (p *Position) Occupied() Bitboard { return p.allOcc }

// OccupiedBy returns the occupied squares of one side.
func (p *Position) OccupiedBy(s Side) Bitboard { return p.occupied[s] }

// PieceBb returns the bitboard of a given (side, piece type) pair.
func (p *Position) PieceBb(s Side, pt PieceType) Bitboard { return p.pieceBb[s][pt] }

// KingSquare returns the square of side s's king.
func (p *Position) KingSquare(s Side) Square { return p.pieceBb[s][King].LSB() }

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move, for the 50-move rule.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// OccurrenceCount returns how many times the current position's key has
// been reached in this game's history. Always ≥ 1.
func (p *Position) OccurrenceCount() int { return p.occurrences[p.key] }

func (p *Position) removePiece(s Side, pt PieceType, sq Square) {
	p.pieceBb[s][pt] &^= sq.Bb()
	p.occupied[s] &^= sq.Bb()
	p.allOcc &^= sq.Bb()
	p.board[sq] = PieceNone
	p.key ^= zobrist.PieceSquare(s, pt, sq)
}

func (p *Position) putPiece(s Side, pt PieceType, sq Square) {
	p.pieceBb[s][pt] |= sq.Bb()
	p.occupied[s] |= sq.Bb()
	p.allOcc |= sq.Bb()
	p.board[sq] = MakePiece(s, pt)
	p.key ^= zobrist.PieceSquare(s, pt, sq)
}

func (p *Position) movePiece(s Side, pt PieceType, from, to Square) {
	p.removePiece(s, pt, from)
	p.putPiece(s, pt, to)
}

// originalRookSquare returns the corner a castling right's rook starts on.
func originalRookSquare(right CastlingRights) Square {
	switch right {
	case CastleWhiteKingside:
		return SqH1
	case CastleWhiteQueenside:
		return SqA1
	case CastleBlackKingside:
		return SqH8
	default:
		return SqA8
	}
}

// MakeMove applies m, which must be a member of the legal-move set computed
// for the current position (the generator, not this function, is where
// legality is checked — passing an illegal move here is a programmer error
// and corrupts state).
func (p *Position) MakeMove(m Move) {
	us := p.sideToMove
	them := us.Opposite()
	from, to := m.From(), m.To()
	moving := p.board[from]
	movingType := moving.TypeOf()

	info := undoInfo{
		move:                m,
		captured:            PieceTypeNone,
		castlingRights:      p.castlingRights,
		epSquare:            p.epSquare,
		halfMoveClock:       p.halfMoveClock,
		lastCaptureHalfMove: p.lastCaptureHalfMove,
		key:                 p.key,
	}

	// clear ep contribution before recomputing; re-added below if a double
	// push happens this move.
	if p.epSquare != SqNone {
		p.key ^= zobrist.EpFile(p.epSquare.File())
	}
	p.key ^= zobrist.Castling(p.castlingRights)

	p.halfMoveClock++

	switch m.Type() {
	case EnPassant:
		capSq := SquareOf(to.File(), from.Rank())
		info.captured = Pawn
		p.removePiece(them, Pawn, capSq)
		p.movePiece(us, Pawn, from, to)
		p.halfMoveClock = 0

	case Castling:
		p.movePiece(us, King, from, to)
		var rookFrom, rookTo Square
		if to.File() == FileG {
			rookFrom, rookTo = SquareOf(FileH, from.Rank()), SquareOf(FileF, from.Rank())
		} else {
			rookFrom, rookTo = SquareOf(FileA, from.Rank()), SquareOf(FileD, from.Rank())
		}
		p.movePiece(us, Rook, rookFrom, rookTo)

	case Promotion:
		if p.board[to] != PieceNone {
			info.captured = p.board[to].TypeOf()
			p.removePiece(them, info.captured, to)
			p.halfMoveClock = 0
		}
		p.removePiece(us, Pawn, from)
		p.putPiece(us, m.PromotionType(), to)
		p.halfMoveClock = 0

	default: // Normal
		if p.board[to] != PieceNone {
			info.captured = p.board[to].TypeOf()
			p.removePiece(them, info.captured, to)
			p.halfMoveClock = 0
		}
		p.movePiece(us, movingType, from, to)
		if movingType == Pawn {
			p.halfMoveClock = 0
		}
	}

	// castling rights update
	if movingType == King {
		p.castlingRights = p.castlingRights.Clear(BothFor(us))
	}
	if from == originalRookSquare(KingsideFor(us)) {
		p.castlingRights = p.castlingRights.Clear(KingsideFor(us))
	}
	if from == originalRookSquare(QueensideFor(us)) {
		p.castlingRights = p.castlingRights.Clear(QueensideFor(us))
	}
	if to == originalRookSquare(KingsideFor(them)) {
		p.castlingRights = p.castlingRights.Clear(KingsideFor(them))
	}
	if to == originalRookSquare(QueensideFor(them)) {
		p.castlingRights = p.castlingRights.Clear(QueensideFor(them))
	}

	// ep square update: reset, then re-set only for a genuine double push
	p.epSquare = SqNone
	if movingType == Pawn {
		diff := int8(to) - int8(from)
		if diff == 16 || diff == -16 {
			p.epSquare = SquareOf(from.File(), (from.Rank()+to.Rank())/2)
		}
	}

	if info.captured != PieceTypeNone {
		p.lastCaptureHalfMove = p.ply
	}

	p.key ^= zobrist.Castling(p.castlingRights)
	if p.epSquare != SqNone {
		p.key ^= zobrist.EpFile(p.epSquare.File())
	}
	p.key ^= zobrist.BlackToMove()

	p.sideToMove = them
	p.ply++
	if us == Black {
		p.moveNumber++
	}

	p.occurrences[p.key]++
	info.wasThreefold = p.occurrences[p.key] >= 3

	p.history = append(p.history, info)
}

// UndoMove reverses the most recent MakeMove. Calling it without a matching
// prior MakeMove is a programmer error.
func (p *Position) UndoMove() {
	n := len(p.history)
	if n == 0 {
		log.Error("UndoMove called with empty history")
		panic("position: UndoMove with empty history")
	}
	info := p.history[n-1]
	p.history = p.history[:n-1]

	p.occurrences[p.key]--
	if p.occurrences[p.key] == 0 {
		delete(p.occurrences, p.key)
	}

	them := p.sideToMove
	us := them.Opposite()
	p.sideToMove = us
	p.ply--
	if us == Black {
		p.moveNumber--
	}

	m := info.move
	from, to := m.From(), m.To()

	switch m.Type() {
	case EnPassant:
		capSq := SquareOf(to.File(), from.Rank())
		p.movePiece(us, Pawn, to, from)
		p.putPiece(them, Pawn, capSq)

	case Castling:
		p.movePiece(us, King, to, from)
		var rookFrom, rookTo Square
		if to.File() == FileG {
			rookFrom, rookTo = SquareOf(FileH, from.Rank()), SquareOf(FileF, from.Rank())
		} else {
			rookFrom, rookTo = SquareOf(FileA, from.Rank()), SquareOf(FileD, from.Rank())
		}
		p.movePiece(us, Rook, rookTo, rookFrom)

	case Promotion:
		p.removePiece(us, m.PromotionType(), to)
		p.putPiece(us, Pawn, from)
		if info.captured != PieceTypeNone {
			p.putPiece(them, info.captured, to)
		}

	default:
		movingType := p.board[to].TypeOf()
		p.movePiece(us, movingType, to, from)
		if info.captured != PieceTypeNone {
			p.putPiece(them, info.captured, to)
		}
	}

	p.castlingRights = info.castlingRights
	p.epSquare = info.epSquare
	p.halfMoveClock = info.halfMoveClock
	p.lastCaptureHalfMove = info.lastCaptureHalfMove
	p.key = info.key
}

// ThreefoldRepetition reports whether the position reached by the most
// recent MakeMove has now occurred for the third time.
func (p *Position) ThreefoldRepetition() bool {
	n := len(p.history)
	if n == 0 {
		return false
	}
	return p.history[n-1].wasThreefold
}

// InsufficientMaterial reports draws by insufficient mating material: king
// vs king, king+minor vs king, and king+bishop vs king+bishop with both
// bishops on the same square colour. Two bishops on the same side are not
// treated as insufficient, whatever their square colours.
func (p *Position) InsufficientMaterial() bool {
	if p.pieceBb[White][Pawn]|p.pieceBb[Black][Pawn]|
		p.pieceBb[White][Rook]|p.pieceBb[Black][Rook]|
		p.pieceBb[White][Queen]|p.pieceBb[Black][Queen] != 0 {
		return false
	}
	wMinors := p.pieceBb[White][Knight].PopCount() + p.pieceBb[White][Bishop].PopCount()
	bMinors := p.pieceBb[Black][Knight].PopCount() + p.pieceBb[Black][Bishop].PopCount()

	if wMinors == 0 && bMinors == 0 {
		return true // K v K
	}
	if wMinors+bMinors == 1 {
		return true // K+minor v K
	}
	if wMinors == 1 && bMinors == 1 &&
		p.pieceBb[White][Knight] == 0 && p.pieceBb[Black][Knight] == 0 {
		wSq := p.pieceBb[White][Bishop].LSB()
		bSq := p.pieceBb[Black][Bishop].LSB()
		return squareColor(wSq) == squareColor(bSq)
	}
	return false
}

func squareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) & 1
}

// Clone returns a deep copy, for search workers that must own their own
// position rather than share one with the driver.
func (p *Position) Clone() *Position {
	cp := *p
	cp.history = append([]undoInfo(nil), p.history...)
	cp.occurrences = make(map[Key]int, len(p.occurrences))
	for k, v := range p.occurrences {
		cp.occurrences[k] = v
	}
	return &cp
}

// IsAttackedBy reports whether any piece of side s attacks sq, given the
// board's actual occupancy.
func (p *Position) IsAttackedBy(sq Square, s Side) bool {
	return p.attackersTo(sq, s, p.allOcc) != 0
}

// attackersTo returns the bitboard of side s's pieces attacking sq, using
// occ as the occupancy (callers computing king safety pass occupancy with
// the king itself removed).
func (p *Position) attackersTo(sq Square, s Side, occ Bitboard) Bitboard {
	var att Bitboard
	att |= attacks.KnightAttacks(sq) & p.pieceBb[s][Knight]
	att |= attacks.KingAttacks(sq) & p.pieceBb[s][King]
	att |= attacks.PawnCaptures(s.Opposite(), sq) & p.pieceBb[s][Pawn]
	bq := p.pieceBb[s][Bishop] | p.pieceBb[s][Queen]
	rq := p.pieceBb[s][Rook] | p.pieceBb[s][Queen]
	if bq != 0 {
		att |= attacks.BishopAttacks(sq, occ) & bq
	}
	if rq != 0 {
		att |= attacks.RookAttacks(sq, occ) & rq
	}
	return att
}

// String renders the board as an 8x8 grid with rank 8 on top, for debug
// output and logging.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f < FileLength; f++ {
			sb.WriteString(p.board[SquareOf(f, r)].String())
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "side=%s castling=%s ep=%s halfmove=%d key=%x\n",
		p.sideToMove, p.castlingRights, p.epSquare, p.halfMoveClock, uint64(p.key))
	return sb.String()
}
