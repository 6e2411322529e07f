package chess

// UndoStack records the moves applied to a board so they can be taken
// back in reverse order. The stack is owned by whoever drives the board;
// the board itself keeps no history.
type UndoStack struct {
	states []UndoState
	keys   []Key // position key before each move
}

// Push applies m to b and records how to reverse it.
func (s *UndoStack) Push(b *Board, m Move) {
	s.keys = append(s.keys, b.Key())
	s.states = append(s.states, b.MakeMove(m))
}

// Pop reverses the most recent Push on b and returns its move. It panics
// if the stack is empty.
func (s *UndoStack) Pop(b *Board) Move {
	n := len(s.states)
	if n == 0 {
		panic("chess: Pop of empty undo stack")
	}
	u := s.states[n-1]
	s.states = s.states[:n-1]
	s.keys = s.keys[:n-1]
	b.UnmakeMove(u.Move, u)
	return u.Move
}

// Len returns the number of recorded moves.
func (s *UndoStack) Len() int { return len(s.states) }

// Peek returns the most recent move, or NoMove.
func (s *UndoStack) Peek() Move {
	if len(s.states) == 0 {
		return NoMove
	}
	return s.states[len(s.states)-1].Move
}

// Moves returns the recorded moves, oldest first.
func (s *UndoStack) Moves() []Move {
	moves := make([]Move, len(s.states))
	for i, u := range s.states {
		moves[i] = u.Move
	}
	return moves
}

// Repetitions counts the earlier positions on the stack whose key equals
// key, looking back no further than the last pawn move or capture.
func (s *UndoStack) Repetitions(key Key) int {
	n := 0
	for i := len(s.states) - 1; i >= 0; i-- {
		if s.keys[i] == key {
			n++
		}
		if s.states[i].Move.IsIrreversible() {
			break
		}
	}
	return n
}
