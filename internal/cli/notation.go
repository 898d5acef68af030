package cli

import (
	"fmt"
	"strconv"
	"strings"

	"xiangqi/internal/xiangqi"
)

// ParseSquare converts "a1".."i10" to a board position. Columns a-i run left
// to right; row 10 is Black's back rank (index 0) and row 1 is Red's (index 9).
func ParseSquare(s string) (xiangqi.Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return xiangqi.Pos{}, fmt.Errorf("bad square %q", s)
	}
	col := int(s[0]) - 'a'
	if col < 0 || col >= xiangqi.Cols {
		return xiangqi.Pos{}, fmt.Errorf("bad column in %q: want a-i", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > xiangqi.Rows {
		return xiangqi.Pos{}, fmt.Errorf("bad row in %q: want 1-10", s)
	}
	return xiangqi.Pos{Row: xiangqi.Rows - n, Col: col}, nil
}

func FormatSquare(p xiangqi.Pos) string {
	if !p.OnBoard() {
		return p.String()
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, xiangqi.Rows-p.Row)
}
