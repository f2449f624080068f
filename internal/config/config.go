//
// chesscore - a chess engine core written in Go
//

// Package config holds process-wide tunables, decoded from an optional
// TOML file and falling back to sane defaults when absent.
package config

import (
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
)

// MagicMode selects how the magic attack tables are built at startup.
type MagicMode string

const (
	MagicSearch MagicMode = "search"
	MagicBaked  MagicMode = "baked"
)

// SearchConfig tunes the search algorithm.
type SearchConfig struct {
	UseTranspositionTable bool `toml:"use_tt"`
	TtSizeMb              int  `toml:"tt_size_mb"`
	UseQuiescence         bool `toml:"use_quiescence"`
	QuiescenceMaxPly      int  `toml:"quiescence_max_ply"`
	UseKillerMoves        bool `toml:"use_killer_moves"`
	KillerSlots           int  `toml:"killer_slots"`
	UseCheckExtension     bool `toml:"use_check_extension"`
	UseMateDistancePruning bool `toml:"use_mate_distance_pruning"`
	MaxRootWorkers        int  `toml:"max_root_workers"`
}

func (c SearchConfig) String() string {
	return reflectString(c)
}

// EvalConfig tunes the evaluator (weights themselves are the evaluator
// package's business; this only toggles which terms it computes).
type EvalConfig struct {
	UsePieceSquareTables bool `toml:"use_pst"`
	UsePawnStructure     bool `toml:"use_pawn_structure"`
	UseTaperedEval       bool `toml:"use_tapered_eval"`
}

func (c EvalConfig) String() string {
	return reflectString(c)
}

// MagicConfig chooses the magic-table construction strategy.
type MagicConfig struct {
	Strategy MagicMode `toml:"strategy"`
}

func (c MagicConfig) String() string {
	return reflectString(c)
}

// Settings is the process-wide configuration object. The package init
// fills Config with the defaults below and Setup overlays a TOML file; a
// zero Settings value has every feature switched off.
type Settings struct {
	Search SearchConfig `toml:"search"`
	Eval   EvalConfig   `toml:"eval"`
	Magic  MagicConfig  `toml:"magic"`
}

// Config is the package-level settings instance every other package reads.
var Config Settings

func init() {
	setupDefaults()
}

func setupDefaults() {
	Config.Search = SearchConfig{
		UseTranspositionTable:  true,
		TtSizeMb:               64,
		UseQuiescence:          true,
		QuiescenceMaxPly:       15,
		UseKillerMoves:         true,
		KillerSlots:            2,
		UseCheckExtension:      true,
		UseMateDistancePruning: true,
		MaxRootWorkers:         1,
	}
	Config.Eval = EvalConfig{
		UsePieceSquareTables: true,
		UsePawnStructure:     true,
		UseTaperedEval:       true,
	}
	Config.Magic = MagicConfig{
		Strategy: MagicBaked,
	}
}

// Setup resets Config to defaults and, if path is non-empty, overlays it
// with a TOML file's contents. An absent or empty path is not an error —
// defaults are assumed to be a reasonable production configuration.
func Setup(path string) error {
	setupDefaults()
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Config); err != nil {
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

func reflectString(v interface{}) string {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	s := rt.Name() + "{"
	for i := 0; i < rt.NumField(); i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", rt.Field(i).Name, rv.Field(i).Interface())
	}
	return s + "}"
}
