// Package processing replays move lines on a board and reports what
// happened along the way: draws, underpromotions, the final game state.
package processing

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/fen"
)

// LineAnalysis holds analysis results from replaying a move line.
type LineAnalysis struct {
	FinalBoard *chess.Board
	Stack      *chess.UndoStack // the moves played, for taking them back
	Keys       []chess.Key      // position key after each ply, starting position first

	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool

	// Draw names the draw the final position is in, or is empty.
	Draw string
}

// FiftyMoveTriggered returns true if the line reached the fifty-move rule.
func (la *LineAnalysis) FiftyMoveTriggered() bool {
	return la.HasFiftyMoveRule
}

// RepetitionDetected returns true if any position occurred three times.
func (la *LineAnalysis) RepetitionDetected() bool {
	return la.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (la *LineAnalysis) UnderpromotionFound() bool {
	return la.HasUnderpromotion
}

// Plies returns the number of moves played.
func (la *LineAnalysis) Plies() int {
	return la.Stack.Len()
}

// ValidationResult holds the result of line validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// AnalyzeLine plays moves, in long algebraic form, from the FEN position
// and analyzes the line. An illegal move stops the replay with an error
// wrapping errors.ErrIllegalMove that names its ply.
func AnalyzeLine(start string, moves []string) (*LineAnalysis, error) {
	board, err := fen.NewBoard(start)
	if err != nil {
		return nil, err
	}
	la := &LineAnalysis{
		FinalBoard: board,
		Stack:      &chess.UndoStack{},
		Keys:       []chess.Key{board.Key()},
	}

	for i, s := range moves {
		m, err := fen.ParseMove(board, s)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		la.Stack.Push(board, m)
		la.Keys = append(la.Keys, board.Key())

		// 50-move rule (100 half-moves)
		if board.IsFiftyMoveDraw() {
			la.HasFiftyMoveRule = true
		}

		// 75-move rule (150 half-moves - automatic draw)
		if board.HalfmoveClock() >= 150 {
			la.Has75MoveRule = true
		}

		if m.IsPromotion() && m.Promotion().Type() != chess.Queen {
			la.HasUnderpromotion = true
		}

		reps := la.Stack.Repetitions(board.Key())
		if reps >= 2 {
			la.HasRepetition = true
		}
		if reps >= 4 {
			la.Has5FoldRepetition = true
		}
	}

	la.HasInsufficientMaterial = board.HasInsufficientMaterial()
	la.Draw = DrawReason(board, la.Stack)
	return la, nil
}

// DrawReason names the draw b is in, given the moves on stack that led to
// it, or returns "".
func DrawReason(b *chess.Board, stack *chess.UndoStack) string {
	switch {
	case stack != nil && stack.Repetitions(b.Key()) >= 2:
		return "threefold repetition"
	case b.IsFiftyMoveDraw():
		return "fifty-move rule"
	case b.HasInsufficientMaterial():
		return "insufficient material"
	case b.IsStalemate():
		return "stalemate"
	}
	return ""
}

// ValidateLine checks that every move of the line is legal.
func ValidateLine(start string, moves []string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	board, err := fen.NewBoard(start)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid FEN: %v", err)
		return result
	}

	for i, s := range moves {
		m, err := fen.ParseMove(board, s)
		if err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, s)
			return result
		}
		board.MakeMove(m)
	}
	return result
}
