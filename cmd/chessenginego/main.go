//
// chesscore - a chess engine core written in Go
//

// chessenginego is a minimal driver exercising the engine core: it loads a
// position, searches it to a fixed depth, prints the result, applies the
// move, and repeats until the game reaches a terminal result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/ofalvai/chesscore/internal/attacks"
	"github.com/ofalvai/chesscore/internal/config"
	"github.com/ofalvai/chesscore/internal/magic"
	"github.com/ofalvai/chesscore/internal/movegen"
	"github.com/ofalvai/chesscore/internal/position"
	"github.com/ofalvai/chesscore/internal/search"
	"github.com/ofalvai/chesscore/internal/zobrist"
)

func main() {
	fen := flag.String("fen", position.StartFen, "FEN of the position to start from")
	depth := flag.Int("depth", 6, "fixed search depth in plies")
	maxMoves := flag.Int("max-moves", 40, "stop after this many half-moves even if the game has not ended")
	configPath := flag.String("config", "", "optional TOML configuration file")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling for this run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if err := config.Setup(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mode := magic.ModeBaked
	if config.Config.Magic.Strategy == "search" {
		mode = magic.ModeSearch
	}
	attacks.Init(mode)
	zobrist.Init()

	pos, err := position.NewFromFen(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < *maxMoves; i++ {
		moves, inCheck := movegen.Generate(pos)
		if moves.Len() == 0 {
			if inCheck {
				fmt.Println("checkmate")
			} else {
				fmt.Println("draw (stalemate)")
			}
			break
		}
		if pos.ThreefoldRepetition() {
			fmt.Println("draw (threefold repetition)")
			break
		}
		if pos.HalfMoveClock() >= 100 {
			fmt.Println("draw (fifty-move rule)")
			break
		}
		if pos.InsufficientMaterial() {
			fmt.Println("draw (insufficient material)")
			break
		}

		s := search.New()
		result := s.FindBest(pos, *depth)
		fmt.Printf("%d. %s score=%d nodes=%d pv=%v\n", i+1, result.Move, result.Score, result.Nodes, result.PV)
		pos.MakeMove(result.Move)
	}
}
