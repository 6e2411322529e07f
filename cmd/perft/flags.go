// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/fen"
)

var (
	// Position options
	fenString = flag.String("fen", fen.InitialFEN, "Starting position in FEN")
	moveList  = flag.String("moves", "", "Moves to play before counting, e.g. \"e2e4 e7e5\"")

	// Counting options
	depth          = flag.Int("depth", 1, "Number of plies to count")
	divide         = flag.Bool("divide", false, "Print the node count below each root move")
	stats          = flag.Bool("stats", false, "Classify leaf moves (captures, checks, ...)")
	unique         = flag.Bool("unique", false, "Count distinct leaf positions")
	uniqueCapacity = flag.Int("unique-capacity", 0, "Maximum distinct positions held (0 = unlimited)")
	workers        = flag.Int("workers", 1, "Worker goroutines (0 = one per CPU)")
	verify         = flag.Bool("verify", false, "Compare the divide against the reference generator")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noTiming   = flag.Bool("notiming", false, "Omit elapsed time and nodes per second")
	showBoard  = flag.Bool("board", false, "Print the position before counting")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 progress")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags sets the starting position and the moves played from it.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = *fenString
	cfg.Moves = strings.Fields(*moveList)
}

// applyPerftFlags configures the count itself.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Stats = *stats
	cfg.Perft.Unique = *unique
	cfg.Perft.UniqueCapacity = *uniqueCapacity
	cfg.Perft.Workers = *workers
	cfg.VerifyReference = *verify
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowTiming = !*noTiming
	cfg.Output.ShowBoard = *showBoard
	cfg.OutputFilename = *outputFile
}
