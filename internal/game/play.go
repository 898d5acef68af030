package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"xiangqi/internal/xiangqi"
)

// MoveResult describes a committed move.
type MoveResult struct {
	Record          MoveRecord
	Check           bool
	Checkmate       bool
	GeneralCaptured bool
	Winner          xiangqi.Side
}

func (r MoveResult) String() string {
	switch {
	case r.Checkmate:
		return fmt.Sprintf("checkmate, %s wins.", r.Winner)
	case r.GeneralCaptured:
		return fmt.Sprintf("general captured, %s wins.", r.Winner)
	case r.Check:
		return "check."
	default:
		return "moved."
	}
}

func now() time.Time { return time.Now().UTC() }

// Start sets up the opening position with Red to move.
func (g *Game) Start() error {
	if g.st.Status == InProgress {
		return ErrAlreadyStarted
	}
	ts := now()
	g.st = GameState{
		ID:        uuid.NewString(),
		Board:     xiangqi.InitialBoard(),
		Turn:      xiangqi.Red,
		Status:    InProgress,
		Winner:    xiangqi.NoSide,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	log.Info().Str("game", g.st.ID).Str("rule", g.rule.String()).Msg("game started")
	return nil
}

// Stop discards the current game and returns to NotStarted.
func (g *Game) Stop() error {
	if g.st.Status == NotStarted {
		return ErrAlreadyStopped
	}
	id := g.st.ID
	g.st = emptyState()
	log.Info().Str("game", id).Msg("game stopped")
	return nil
}

// Move moves the piece on from to to for the side whose turn it is.
// On error the game is unchanged.
func (g *Game) Move(from, to xiangqi.Pos) (MoveResult, error) {
	res, err := g.move(from, to)
	if err != nil {
		log.Debug().Str("game", g.st.ID).Stringer("from", from).Stringer("to", to).
			Stringer("side", g.st.Turn).Err(err).Msg("move rejected")
	}
	return res, err
}

func (g *Game) move(from, to xiangqi.Pos) (MoveResult, error) {
	switch g.st.Status {
	case Over:
		return MoveResult{}, ErrGameOver
	case NotStarted:
		return MoveResult{}, ErrNotStarted
	}

	pc := g.st.Board.PieceAt(from)
	if pc == xiangqi.NoPiece {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrNoPieceAtSource, from)
	}
	mover := g.st.Turn
	if pc.Side() != mover {
		return MoveResult{}, fmt.Errorf("%w: %s belongs to %s", ErrWrongTurn, from, pc.Side())
	}
	if !xiangqi.IsLegal(&g.st.Board, from, to) {
		return MoveResult{}, fmt.Errorf("%w: %s %s -> %s", ErrIllegalMove, pc.Type(), from, to)
	}

	// 在拷贝上试走，通过自将检查后才替换正式棋盘
	next := g.st.Board
	captured := next.Move(from, to)
	if g.leavesSelfInCheck(&next, mover) {
		return MoveResult{}, fmt.Errorf("%w: %s -> %s", ErrSelfCheck, from, to)
	}

	rec := MoveRecord{From: from, To: to, Piece: pc, Captured: captured, Mover: mover}
	enemy := mover.Opponent()
	g.st.Board = next
	g.st.History = append(g.st.History, rec)
	g.st.UpdatedAt = now()

	res := MoveResult{Record: rec, Winner: xiangqi.NoSide}
	switch {
	case !next.HasGeneral(enemy):
		res.GeneralCaptured = true
	case next.IsCheckmate(enemy):
		res.Checkmate = true
	case next.IsInCheck(enemy):
		res.Check = true
	}

	if res.Checkmate || res.GeneralCaptured {
		g.st.Status = Over
		g.st.Winner = mover
		res.Winner = mover
		log.Info().Str("game", g.st.ID).Stringer("winner", mover).Int("plies", len(g.st.History)).Msg("game over")
		return res, nil
	}
	g.st.Turn = enemy
	return res, nil
}

func (g *Game) leavesSelfInCheck(b *xiangqi.Board, mover xiangqi.Side) bool {
	if g.rule == RuleStandard {
		return b.IsInCheck(mover) || b.GeneralsFacing()
	}
	return b.IsCheckmate(mover)
}

// Retract undoes the most recent move and gives the turn back to its mover.
func (g *Game) Retract() (MoveRecord, error) {
	switch g.st.Status {
	case Over:
		return MoveRecord{}, ErrGameOver
	case NotStarted:
		return MoveRecord{}, ErrNotStarted
	}
	n := len(g.st.History)
	if n == 0 {
		return MoveRecord{}, ErrNoHistory
	}
	rec := g.st.History[n-1]
	g.st.History = g.st.History[:n-1]
	undo(&g.st.Board, rec)
	g.st.Turn = rec.Mover
	g.st.UpdatedAt = now()
	log.Debug().Str("game", g.st.ID).Stringer("from", rec.From).Stringer("to", rec.To).Msg("move retracted")
	return rec, nil
}

func undo(b *xiangqi.Board, rec MoveRecord) {
	b.Place(rec.To, rec.Captured)
	b.Place(rec.From, rec.Piece)
}
