package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiangqi/internal/xiangqi"
)

func TestRenderInitialBoard(t *testing.T) {
	b := xiangqi.InitialBoard()
	var sb strings.Builder
	require.NoError(t, Render(&sb, &b, false))
	out := sb.String()

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	// 表头 + 10 行棋子 + 9 行连线
	require.Len(t, lines, 20)
	assert.Equal(t, "  a   b   c   d   e   f   g   h   i", lines[0])
	assert.Equal(t, "10车一马一象一士一将一士一象一马一车", lines[1])
	assert.Equal(t, "1 车一马一相一仕一帅一仕一相一马一车", lines[19])
	assert.Contains(t, out, "楚  河      汉  界")
	assert.NotContains(t, out, ansiRed)
}

func TestRenderColored(t *testing.T) {
	var b xiangqi.Board
	b.Place(xiangqi.Pos{Row: 9, Col: 4}, xiangqi.MakePiece(xiangqi.Red, xiangqi.PieceGeneral))
	b.Place(xiangqi.Pos{Row: 0, Col: 4}, xiangqi.MakePiece(xiangqi.Black, xiangqi.PieceGeneral))

	var sb strings.Builder
	require.NoError(t, Render(&sb, &b, true))
	assert.Contains(t, sb.String(), ansiRed+"帅"+ansiReset)
	assert.Contains(t, sb.String(), ansiBlue+"将"+ansiReset)
}
