package game

import (
	"fmt"
	"time"

	"xiangqi/internal/xiangqi"
)

type Status int

const (
	NotStarted Status = iota
	InProgress
	Over
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func parseStatus(s string) (Status, error) {
	switch s {
	case "not_started":
		return NotStarted, nil
	case "in_progress":
		return InProgress, nil
	case "over":
		return Over, nil
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

// SelfCheckRule decides which positions a side may leave itself in after its own move.
type SelfCheckRule int

const (
	// RuleLiteral rejects a move only when the mover is checkmated afterwards.
	RuleLiteral SelfCheckRule = iota
	// RuleStandard rejects a move that leaves the mover in check or the generals facing.
	RuleStandard
)

func (r SelfCheckRule) String() string {
	if r == RuleStandard {
		return "standard"
	}
	return "literal"
}

func ParseSelfCheckRule(s string) (SelfCheckRule, error) {
	switch s {
	case "", "literal":
		return RuleLiteral, nil
	case "standard":
		return RuleStandard, nil
	}
	return RuleLiteral, fmt.Errorf("unknown self-check rule %q", s)
}

// MoveRecord is one committed move; History is a LIFO stack of them.
type MoveRecord struct {
	From     xiangqi.Pos
	To       xiangqi.Pos
	Piece    xiangqi.Piece
	Captured xiangqi.Piece
	Mover    xiangqi.Side
}

// GameState is the full mutable state of one game. Game owns exactly one.
type GameState struct {
	ID        string
	Board     xiangqi.Board
	Turn      xiangqi.Side
	Status    Status
	Winner    xiangqi.Side
	History   []MoveRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

func emptyState() GameState {
	return GameState{
		Turn:   xiangqi.Red,
		Status: NotStarted,
		Winner: xiangqi.NoSide,
	}
}

type Option func(*Game)

func WithSelfCheckRule(r SelfCheckRule) Option {
	return func(g *Game) { g.rule = r }
}

// Game is the turn/status state machine. It is not safe for concurrent use;
// the caller owns it and serialises calls.
type Game struct {
	st   GameState
	rule SelfCheckRule
}

func New(opts ...Option) *Game {
	g := &Game{st: emptyState()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) ID() string { return g.st.ID }
func (g *Game) Board() xiangqi.Board { return g.st.Board }
func (g *Game) Turn() xiangqi.Side { return g.st.Turn }
func (g *Game) Status() Status { return g.st.Status }
func (g *Game) Winner() xiangqi.Side { return g.st.Winner }
func (g *Game) Rule() SelfCheckRule { return g.rule }
func (g *Game) CreatedAt() time.Time { return g.st.CreatedAt }
func (g *Game) UpdatedAt() time.Time { return g.st.UpdatedAt }
func (g *Game) InCheck() bool { return g.st.Board.IsInCheck(g.st.Turn) }
func (g *Game) PieceAt(p xiangqi.Pos) xiangqi.Piece { return g.st.Board.PieceAt(p) }

// History returns a copy of the committed moves, oldest first.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.st.History))
	copy(out, g.st.History)
	return out
}

// State returns a deep copy of the current state.
func (g *Game) State() GameState {
	st := g.st
	st.History = g.History()
	return st
}

// LegalMoves lists destinations the piece on from may move to under the piece rules.
func (g *Game) LegalMoves(from xiangqi.Pos) []xiangqi.Pos {
	return g.st.Board.LegalMovesFrom(from)
}
