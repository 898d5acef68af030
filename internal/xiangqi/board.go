package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界在第 4、5 行之间
	RiverRow = 5
)

func indexOf(row, col int) int { return row*Cols + col }
func posOf(sq int) Pos         { return Pos{Row: sq / Cols, Col: sq % Cols} }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// OnBoard 坐标是否在盘内
func (p Pos) OnBoard() bool { return onBoard(p.Row, p.Col) }

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 是否在己方半场（相/象活动范围）
func onOwnHalf(side Side, row int) bool {
	if side == Red {
		return row >= RiverRow
	}
	if side == Black {
		return row < RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= 7 && row <= 9
	}
	return false
}

func (b *Board) PieceAt(p Pos) Piece {
	if !p.OnBoard() {
		return NoPiece
	}
	return b.Squares[indexOf(p.Row, p.Col)]
}

func (b *Board) Place(p Pos, pc Piece) {
	if !p.OnBoard() {
		return
	}
	b.Squares[indexOf(p.Row, p.Col)] = pc
}

// Remove 清空格子，返回原来的棋子
func (b *Board) Remove(p Pos) Piece {
	pc := b.PieceAt(p)
	b.Place(p, NoPiece)
	return pc
}

// Move 不做任何规则检查，只搬子；返回被吃掉的子（可能为空）
func (b *Board) Move(from, to Pos) Piece {
	pc := b.Remove(from)
	captured := b.PieceAt(to)
	b.Place(to, pc)
	return captured
}

// Find 扫描整盘找到第一个等于 pc 的格子
func (b *Board) Find(pc Piece) (Pos, bool) {
	for sq, x := range b.Squares {
		if x == pc && pc != NoPiece {
			return posOf(sq), true
		}
	}
	return Pos{}, false
}

// Count 统计某个棋子在盘上的数量
func (b *Board) Count(pc Piece) int {
	n := 0
	for _, x := range b.Squares {
		if x == pc {
			n++
		}
	}
	return n
}

func (b *Board) generalPos(side Side) (Pos, bool) {
	return b.Find(MakePiece(side, PieceGeneral))
}

// HasGeneral 该方的帅/将是否还在盘上
func (b *Board) HasGeneral(side Side) bool {
	_, ok := b.generalPos(side)
	return ok
}

var letterToPieceType = map[rune]PieceType{
	'k': PieceGeneral,  // 帅 / 将
	'a': PieceAdvisor,  // 仕 / 士
	'b': PieceElephant, // 相 / 象
	'n': PieceHorse,    // 马
	'r': PieceRook,     // 车
	'c': PieceCannon,   // 炮
	'p': PieceSoldier,  // 兵 / 卒
}

var pieceTypeToLetter = map[PieceType]rune{
	PieceGeneral:  'k',
	PieceAdvisor:  'a',
	PieceElephant: 'b',
	PieceHorse:    'n',
	PieceRook:     'r',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

// PieceLetter 红方大写，黑方小写，空位 '.'
func PieceLetter(p Piece) rune {
	if p == NoPiece {
		return '.'
	}
	base, ok := pieceTypeToLetter[p.Type()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// ParsePieceLetter 是 PieceLetter 的逆操作
func ParsePieceLetter(ch rune) (Piece, bool) {
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	side := Black
	if unicode.IsUpper(ch) {
		side = Red
	}
	return MakePiece(side, pt), true
}

// 开局摆法：黑上红下
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := ParsePieceLetter(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[indexOf(r, c)] = pc
		}
	}
	return b
}

// InitialBoard 返回标准开局
func InitialBoard() Board {
	return parseInitialBoard()
}
