package cli

import (
	"fmt"
	"io"
	"strings"

	"xiangqi/internal/xiangqi"
)

const (
	ansiRed   = "\033[31m"
	ansiBlue  = "\033[34m"
	ansiReset = "\033[0m"
)

var redGlyphs = map[xiangqi.PieceType]string{
	xiangqi.PieceGeneral:  "帅",
	xiangqi.PieceAdvisor:  "仕",
	xiangqi.PieceElephant: "相",
	xiangqi.PieceHorse:    "马",
	xiangqi.PieceRook:     "车",
	xiangqi.PieceCannon:   "炮",
	xiangqi.PieceSoldier:  "兵",
}

var blackGlyphs = map[xiangqi.PieceType]string{
	xiangqi.PieceGeneral:  "将",
	xiangqi.PieceAdvisor:  "士",
	xiangqi.PieceElephant: "象",
	xiangqi.PieceHorse:    "马",
	xiangqi.PieceRook:     "车",
	xiangqi.PieceCannon:   "炮",
	xiangqi.PieceSoldier:  "卒",
}

func glyph(pc xiangqi.Piece, colored bool) string {
	if pc == xiangqi.NoPiece {
		return "〇"
	}
	g, esc := redGlyphs[pc.Type()], ansiRed
	if pc.Side() == xiangqi.Black {
		g, esc = blackGlyphs[pc.Type()], ansiBlue
	}
	if !colored {
		return g
	}
	return esc + g + ansiReset
}

// 每一行棋子下面的连线；九宫斜线和楚河汉界单独画
func connector(row int) string {
	switch row {
	case 0, 7:
		return "  丨  丨  丨  丨╲ 丨 ╱丨  丨  丨  丨"
	case 1, 8:
		return "  丨  丨  丨  丨╱ 丨 ╲丨  丨  丨  丨"
	case 4:
		return "  丨      楚  河      汉  界      丨"
	default:
		return "  丨  丨  丨  丨  丨  丨  丨  丨  丨"
	}
}

// Render draws the board with file letters on top and rank numbers on the left.
func Render(w io.Writer, b *xiangqi.Board, colored bool) error {
	var sb strings.Builder
	sb.WriteString("\n  a   b   c   d   e   f   g   h   i\n")
	for r := 0; r < xiangqi.Rows; r++ {
		fmt.Fprintf(&sb, "%-2d", xiangqi.Rows-r)
		for c := 0; c < xiangqi.Cols; c++ {
			if c > 0 {
				sb.WriteString("一")
			}
			sb.WriteString(glyph(b.PieceAt(xiangqi.Pos{Row: r, Col: c}), colored))
		}
		sb.WriteByte('\n')
		if r < xiangqi.Rows-1 {
			sb.WriteString(connector(r))
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
