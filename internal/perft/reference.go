package perft

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/fen"
)

// Reference counts perft with an independent bitboard move generator, as a
// cross-check on this package's own counts.
type Reference struct {
	board dragontoothmg.Board
}

// NewReference sets up the reference generator on a FEN position. The FEN
// is checked and normalised to six fields by this module's own parser
// first, since the reference parser does not report errors.
func NewReference(s string) (*Reference, error) {
	p, err := fen.Parse(s)
	if err != nil {
		return nil, err
	}
	return &Reference{board: dragontoothmg.ParseFen(fen.FormatPosition(p))}, nil
}

// Perft returns the reference leaf count depth plies below the position.
func (r *Reference) Perft(depth int) int64 {
	return referencePerft(&r.board, depth)
}

func referencePerft(b *dragontoothmg.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide returns the reference node count below each root move, sorted as
// Divide sorts. Move is left zero; UCI carries the move.
func (r *Reference) Divide(depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := r.board.GenerateLegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		unapply := r.board.Apply(m)
		entries = append(entries, DivideEntry{UCI: m.String(), Nodes: referencePerft(&r.board, depth-1)})
		unapply()
	}
	sortEntries(entries)
	return entries
}

// Mismatch is one root move on which the two generators disagree. A move
// only one side generates has a zero count on the other.
type Mismatch struct {
	UCI       string `json:"move"`
	Nodes     int64  `json:"nodes"`
	Reference int64  `json:"reference"`
}

// Compare runs Divide on the FEN position with both generators and returns
// the root moves whose counts differ. When any differ, the error wraps
// errors.ErrReferenceMismatch.
func Compare(s string, depth int) ([]Mismatch, error) {
	b, err := fen.NewBoard(s)
	if err != nil {
		return nil, err
	}
	ref, err := NewReference(s)
	if err != nil {
		return nil, err
	}
	mismatches := DiffDivides(Divide(b, depth), ref.Divide(depth))
	if len(mismatches) > 0 {
		return mismatches, errors.Wrapf(errors.ErrReferenceMismatch,
			"%d root moves differ at depth %d in %s", len(mismatches), depth, s)
	}
	return nil, nil
}

// DiffDivides merges two divides sorted by move text and keeps the entries
// that differ.
func DiffDivides(ours, theirs []DivideEntry) []Mismatch {
	var out []Mismatch
	i, j := 0, 0
	for i < len(ours) || j < len(theirs) {
		switch {
		case j == len(theirs) || (i < len(ours) && ours[i].UCI < theirs[j].UCI):
			out = append(out, Mismatch{UCI: ours[i].UCI, Nodes: ours[i].Nodes})
			i++
		case i == len(ours) || theirs[j].UCI < ours[i].UCI:
			out = append(out, Mismatch{UCI: theirs[j].UCI, Reference: theirs[j].Nodes})
			j++
		default:
			if ours[i].Nodes != theirs[j].Nodes {
				out = append(out, Mismatch{UCI: ours[i].UCI, Nodes: ours[i].Nodes, Reference: theirs[j].Nodes})
			}
			i++
			j++
		}
	}
	return out
}
