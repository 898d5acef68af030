package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiangqi/internal/xiangqi"
)

func at(row, col int) xiangqi.Pos { return xiangqi.Pos{Row: row, Col: col} }

// gameAt 构造一个进行中的对局，盘面和走子方来自 FEN
func gameAt(t *testing.T, fen string, opts ...Option) *Game {
	t.Helper()
	b, side, err := xiangqi.DecodeFEN(fen)
	require.NoError(t, err)
	g := New(opts...)
	g.st = GameState{
		ID:     "test",
		Board:  b,
		Turn:   side,
		Status: InProgress,
		Winner: xiangqi.NoSide,
	}
	return g
}

func started(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	require.NoError(t, g.Start())
	return g
}

func TestLifecycle(t *testing.T) {
	g := New()
	assert.Equal(t, NotStarted, g.Status())
	assert.Equal(t, xiangqi.Board{}, g.Board())
	assert.ErrorIs(t, g.Stop(), ErrAlreadyStopped)

	require.NoError(t, g.Start())
	assert.Equal(t, InProgress, g.Status())
	assert.Equal(t, xiangqi.Red, g.Turn())
	assert.Equal(t, xiangqi.InitialBoard(), g.Board())
	assert.NotEmpty(t, g.ID())
	assert.Empty(t, g.History())
	assert.ErrorIs(t, g.Start(), ErrAlreadyStarted)

	_, err := g.Move(at(6, 0), at(5, 0))
	require.NoError(t, err)

	require.NoError(t, g.Stop())
	assert.Equal(t, NotStarted, g.Status())
	assert.Equal(t, xiangqi.Board{}, g.Board())
	assert.Empty(t, g.History())
	assert.Equal(t, xiangqi.NoSide, g.Winner())

	_, err = g.Move(at(6, 0), at(5, 0))
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = g.Retract()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestStartAssignsFreshID(t *testing.T) {
	g := started(t)
	first := g.ID()
	require.NoError(t, g.Stop())
	require.NoError(t, g.Start())
	assert.NotEqual(t, first, g.ID())
}

func TestTurnAlternation(t *testing.T) {
	g := started(t)

	res, err := g.Move(at(6, 0), at(5, 0))
	require.NoError(t, err)
	assert.Equal(t, "moved.", res.String())
	assert.Equal(t, xiangqi.Black, g.Turn())

	before := g.Board()
	_, err = g.Move(at(3, 4), at(3, 5))
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, before, g.Board())
	assert.Equal(t, xiangqi.Black, g.Turn())
}

func TestMoveRejections(t *testing.T) {
	g := started(t)
	before := g.Board()

	t.Run("wrong turn", func(t *testing.T) {
		_, err := g.Move(at(0, 0), at(1, 0))
		assert.ErrorIs(t, err, ErrWrongTurn)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := g.Move(at(5, 5), at(4, 5))
		assert.ErrorIs(t, err, ErrNoPieceAtSource)
	})

	t.Run("own piece on destination", func(t *testing.T) {
		_, err := g.Move(at(9, 0), at(9, 1))
		assert.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := g.Move(at(9, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrIllegalMove)
	})

	if diff := cmp.Diff(before, g.Board()); diff != "" {
		t.Fatalf("rejected moves changed the board (-before +after):\n%s", diff)
	}
	assert.Equal(t, xiangqi.Red, g.Turn())
	assert.Empty(t, g.History())
}

func TestMoveThenRetract(t *testing.T) {
	g := started(t)
	_, err := g.Move(at(7, 1), at(7, 4))
	require.NoError(t, err)

	before, turn := g.Board(), g.Turn()
	res, err := g.Move(at(0, 1), at(2, 2))
	require.NoError(t, err)
	assert.Equal(t, xiangqi.MakePiece(xiangqi.Black, xiangqi.PieceHorse), res.Record.Piece)

	rec, err := g.Retract()
	require.NoError(t, err)
	assert.Equal(t, res.Record, rec)
	assert.Equal(t, before, g.Board())
	assert.Equal(t, turn, g.Turn())
}

func TestRetractRestoresCaptures(t *testing.T) {
	g := started(t)
	moves := [][2]xiangqi.Pos{
		{at(7, 1), at(0, 1)}, // 炮打马
		{at(0, 0), at(0, 1)}, // 车吃炮
		{at(6, 0), at(5, 0)},
		{at(3, 4), at(4, 4)},
	}
	for _, mv := range moves {
		_, err := g.Move(mv[0], mv[1])
		require.NoError(t, err, "move %v", mv)
	}
	hist := g.History()
	require.Len(t, hist, 4)
	assert.Equal(t, xiangqi.MakePiece(xiangqi.Black, xiangqi.PieceHorse), hist[0].Captured)
	assert.Equal(t, xiangqi.MakePiece(xiangqi.Red, xiangqi.PieceCannon), hist[1].Captured)

	for range moves {
		_, err := g.Retract()
		require.NoError(t, err)
	}
	assert.Equal(t, xiangqi.InitialBoard(), g.Board())
	assert.Equal(t, xiangqi.Red, g.Turn())

	_, err := g.Retract()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestCheckmateEndsGame(t *testing.T) {
	g := gameAt(t, "4k4/9/2N3N2/9/R8/9/9/9/9/3K5 w")

	res, err := g.Move(at(4, 0), at(4, 4))
	require.NoError(t, err)
	assert.True(t, res.Checkmate)
	assert.Equal(t, "checkmate, red wins.", res.String())
	assert.Equal(t, Over, g.Status())
	assert.Equal(t, xiangqi.Red, g.Winner())
	assert.Len(t, g.History(), 1)

	_, err = g.Move(at(0, 4), at(0, 3))
	assert.ErrorIs(t, err, ErrGameOver)
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = g.Retract()
	assert.ErrorIs(t, err, ErrGameOver)

	require.NoError(t, g.Start())
	assert.Equal(t, InProgress, g.Status())
	assert.Equal(t, xiangqi.NoSide, g.Winner())
}

func TestCheckSwitchesTurn(t *testing.T) {
	g := gameAt(t, "4k4/9/2N6/9/R8/9/9/9/9/3K5 w")

	res, err := g.Move(at(4, 0), at(4, 4))
	require.NoError(t, err)
	assert.True(t, res.Check)
	assert.False(t, res.Checkmate)
	assert.Equal(t, "check.", res.String())
	assert.Equal(t, xiangqi.Black, g.Turn())
	assert.True(t, g.InCheck())

	_, err = g.Move(at(0, 4), at(0, 5))
	require.NoError(t, err)
	assert.False(t, g.InCheck())
}

func TestSelfCheckRules(t *testing.T) {
	t.Run("self mate is rejected under both rules", func(t *testing.T) {
		for _, rule := range []SelfCheckRule{RuleLiteral, RuleStandard} {
			g := gameAt(t, "3rkr3/4r4/9/9/9/9/9/9/9/4K4 w", WithSelfCheckRule(rule))
			before := g.Board()
			_, err := g.Move(at(9, 4), at(8, 4))
			assert.ErrorIs(t, err, ErrSelfCheck, rule.String())
			assert.Equal(t, before, g.Board(), rule.String())
			assert.Empty(t, g.History())
		}
	})

	t.Run("stepping into check", func(t *testing.T) {
		const fen = "3r1k3/9/9/9/9/9/9/9/9/4K4 w"

		literal := gameAt(t, fen)
		res, err := literal.Move(at(9, 4), at(9, 3))
		require.NoError(t, err)
		assert.Equal(t, "moved.", res.String())

		standard := gameAt(t, fen, WithSelfCheckRule(RuleStandard))
		_, err = standard.Move(at(9, 4), at(9, 3))
		assert.ErrorIs(t, err, ErrSelfCheck)
	})

	t.Run("uncovering the generals", func(t *testing.T) {
		const fen = "4k4/9/9/9/9/4R4/9/9/9/4K4 w"

		literal := gameAt(t, fen)
		_, err := literal.Move(at(5, 4), at(5, 0))
		require.NoError(t, err)

		standard := gameAt(t, fen, WithSelfCheckRule(RuleStandard))
		_, err = standard.Move(at(5, 4), at(5, 0))
		assert.ErrorIs(t, err, ErrSelfCheck)
	})
}

func TestGeneralCaptureEndsGame(t *testing.T) {
	g := gameAt(t, "3k5/9/9/9/9/4r4/9/9/9/4K4 b")

	res, err := g.Move(at(5, 4), at(9, 4))
	require.NoError(t, err)
	assert.True(t, res.GeneralCaptured)
	assert.Equal(t, "general captured, black wins.", res.String())
	assert.Equal(t, Over, g.Status())
	assert.Equal(t, xiangqi.Black, g.Winner())
}

func TestLegalMoves(t *testing.T) {
	g := started(t)
	assert.ElementsMatch(t, []xiangqi.Pos{at(7, 0), at(7, 2)}, g.LegalMoves(at(9, 1)))
	assert.Empty(t, g.LegalMoves(at(4, 4)))
}

func TestParseSelfCheckRule(t *testing.T) {
	r, err := ParseSelfCheckRule("standard")
	require.NoError(t, err)
	assert.Equal(t, RuleStandard, r)

	r, err = ParseSelfCheckRule("")
	require.NoError(t, err)
	assert.Equal(t, RuleLiteral, r)

	_, err = ParseSelfCheckRule("lenient")
	assert.Error(t, err)
}
