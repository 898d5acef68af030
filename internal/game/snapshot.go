package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"xiangqi/internal/xiangqi"
)

// SnapshotVersion is written into every snapshot; Decode rejects other versions.
const SnapshotVersion = 1

type snapshot struct {
	Version   int              `json:"version"`
	ID        string           `json:"id"`
	Board     string           `json:"board"`
	Turn      string           `json:"turn"`
	Status    string           `json:"status"`
	Winner    string           `json:"winner,omitempty"`
	Hash      string           `json:"hash"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	History   []snapshotRecord `json:"history"`
}

type snapshotRecord struct {
	From     xiangqi.Pos `json:"from"`
	To       xiangqi.Pos `json:"to"`
	Piece    string      `json:"piece"`
	Captured string      `json:"captured,omitempty"`
	Mover    string      `json:"mover"`
}

// EncodeSnapshot serialises st into the versioned snapshot format.
func EncodeSnapshot(st GameState) ([]byte, error) {
	snap := snapshot{
		Version:   SnapshotVersion,
		ID:        st.ID,
		Board:     st.Board.Encode(),
		Turn:      st.Turn.String(),
		Status:    st.Status.String(),
		Hash:      strconv.FormatUint(st.Board.Hash(st.Turn), 16),
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
		History:   make([]snapshotRecord, 0, len(st.History)),
	}
	if st.Winner != xiangqi.NoSide {
		snap.Winner = st.Winner.String()
	}
	for _, rec := range st.History {
		sr := snapshotRecord{
			From:  rec.From,
			To:    rec.To,
			Piece: string(xiangqi.PieceLetter(rec.Piece)),
			Mover: rec.Mover.String(),
		}
		if rec.Captured != xiangqi.NoPiece {
			sr.Captured = string(xiangqi.PieceLetter(rec.Captured))
		}
		snap.History = append(snap.History, sr)
	}
	return json.MarshalIndent(snap, "", "  ")
}

var errBadSnapshot = errors.New("invalid snapshot")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadSnapshot, fmt.Sprintf(format, args...))
}

// DecodeSnapshot parses and validates a snapshot produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (GameState, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return GameState{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return GameState{}, invalid("unsupported version %d", snap.Version)
	}

	board, err := xiangqi.DecodeBoard(snap.Board)
	if err != nil {
		return GameState{}, fmt.Errorf("board: %w", err)
	}
	turn, err := parseSide(snap.Turn)
	if err != nil || turn == xiangqi.NoSide {
		return GameState{}, invalid("turn %q", snap.Turn)
	}
	status, err := parseStatus(snap.Status)
	if err != nil {
		return GameState{}, invalid("%v", err)
	}
	winner, err := parseSide(snap.Winner)
	if err != nil {
		return GameState{}, invalid("winner %q", snap.Winner)
	}
	if (status == Over) != (winner != xiangqi.NoSide) {
		return GameState{}, invalid("winner %q with status %s", snap.Winner, status)
	}
	if want := strconv.FormatUint(board.Hash(turn), 16); snap.Hash != want {
		return GameState{}, invalid("hash mismatch: got %s want %s", snap.Hash, want)
	}
	if status == InProgress {
		for _, side := range []xiangqi.Side{xiangqi.Red, xiangqi.Black} {
			if n := board.Count(xiangqi.MakePiece(side, xiangqi.PieceGeneral)); n != 1 {
				return GameState{}, invalid("%s has %d generals", side, n)
			}
		}
	}

	st := GameState{
		ID:        snap.ID,
		Board:     board,
		Turn:      turn,
		Status:    status,
		Winner:    winner,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
	for i, sr := range snap.History {
		rec, err := sr.record()
		if err != nil {
			return GameState{}, invalid("history[%d]: %v", i, err)
		}
		st.History = append(st.History, rec)
	}
	if err := checkHistory(st); err != nil {
		return GameState{}, err
	}
	return st, nil
}

func (sr snapshotRecord) record() (MoveRecord, error) {
	if !sr.From.OnBoard() || !sr.To.OnBoard() {
		return MoveRecord{}, fmt.Errorf("square off board: %s -> %s", sr.From, sr.To)
	}
	pc, err := parsePiece(sr.Piece)
	if err != nil || pc == xiangqi.NoPiece {
		return MoveRecord{}, fmt.Errorf("piece %q", sr.Piece)
	}
	captured, err := parsePiece(sr.Captured)
	if err != nil {
		return MoveRecord{}, fmt.Errorf("captured %q", sr.Captured)
	}
	mover, err := parseSide(sr.Mover)
	if err != nil || mover != pc.Side() {
		return MoveRecord{}, fmt.Errorf("mover %q", sr.Mover)
	}
	return MoveRecord{From: sr.From, To: sr.To, Piece: pc, Captured: captured, Mover: mover}, nil
}

// checkHistory undoes every recorded move on a copy of the board; a consistent
// history must lead back to the opening position.
func checkHistory(st GameState) error {
	if st.Status == NotStarted {
		if len(st.History) > 0 {
			return invalid("history on a game that has not started")
		}
		return nil
	}
	b := st.Board
	for i := len(st.History) - 1; i >= 0; i-- {
		rec := st.History[i]
		if b.PieceAt(rec.To) != rec.Piece || b.PieceAt(rec.From) != xiangqi.NoPiece {
			return invalid("history[%d] does not match the board", i)
		}
		undo(&b, rec)
	}
	if b != xiangqi.InitialBoard() {
		return invalid("history does not lead back to the opening position")
	}
	return nil
}

func parseSide(s string) (xiangqi.Side, error) {
	switch s {
	case "":
		return xiangqi.NoSide, nil
	case "red":
		return xiangqi.Red, nil
	case "black":
		return xiangqi.Black, nil
	}
	return xiangqi.NoSide, fmt.Errorf("unknown side %q", s)
}

func parsePiece(s string) (xiangqi.Piece, error) {
	if s == "" {
		return xiangqi.NoPiece, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return xiangqi.NoPiece, fmt.Errorf("unknown piece %q", s)
	}
	pc, ok := xiangqi.ParsePieceLetter(r[0])
	if !ok {
		return xiangqi.NoPiece, fmt.Errorf("unknown piece %q", s)
	}
	return pc, nil
}
