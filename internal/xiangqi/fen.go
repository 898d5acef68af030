package xiangqi

import (
	"errors"
	"strings"
)

// Encode 简单 FEN-like：10 行用“/”隔开，空位用数字压缩，红大写黑小写
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(PieceLetter(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

func DecodeBoard(s string) (Board, error) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != Rows {
		return Board{}, ErrInvalidFEN
	}
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return Board{}, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := ParsePieceLetter(ch)
			if !ok {
				return Board{}, ErrInvalidFEN
			}
			b.Squares[indexOf(r, c)] = pc
			c++
		}
		if c != Cols {
			return Board{}, ErrInvalidFEN
		}
	}
	return b, nil
}

// EncodeFEN 棋盘 + 空格 + w/b（红/黑走）
func EncodeFEN(b *Board, toMove Side) string {
	stm := "w"
	if toMove == Black {
		stm = "b"
	}
	return b.Encode() + " " + stm
}

func DecodeFEN(fen string) (Board, Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return Board{}, NoSide, ErrInvalidFEN
	}
	b, err := DecodeBoard(parts[0])
	if err != nil {
		return Board{}, NoSide, err
	}
	switch parts[1] {
	case "w", "r":
		return b, Red, nil
	case "b":
		return b, Black, nil
	default:
		return Board{}, NoSide, ErrInvalidFEN
	}
}
