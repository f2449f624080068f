//
// chesscore - a chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types holds the primitive value types shared by every other
// package of the engine: squares, files, ranks, sides, pieces, bitboards,
// moves and castling rights. Board orientation is fixed here once and for
// all: SqA1 = 0, SqH8 = 63, file = sq & 7, rank = sq >> 3.
package types


// Square is one of the 64 squares of a chess board, or SqNone.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// File returns the file (0=a..7=h) of sq.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (0=1st..7=8th) of sq.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank, or SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// ParseSquare reads a square from its algebraic form, e.g. "e4".
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String renders sq in algebraic notation, or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// direction offsets for the eight ray directions, indexed by Direction.
var directionDelta = [8]int8{8, -8, 1, -1, 9, -7, -9, 7}

// To returns the square one step from sq in direction d, or SqNone if that
// would leave the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	switch d {
	case East, NorthEast, SouthEast:
		if sq.File() == FileH {
			return SqNone
		}
	case West, NorthWest, SouthWest:
		if sq.File() == FileA {
			return SqNone
		}
	}
	n := Square(int8(sq) + directionDelta[d])
	if !n.IsValid() {
		return SqNone
	}
	return n
}
