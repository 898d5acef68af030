package xiangqi

// ruleFunc 判断 side 方的棋子从 from 走到 to 是否符合该兵种的走法。
// 调用前已经检查过：两个坐标都在盘内、from != to、to 上不是己方棋子。
type ruleFunc func(b *Board, side Side, from, to Pos) bool

// 兵种 -> 走法规则。新增兵种必须在这里登记，否则 IsLegal 一律返回 false。
var pieceRules = [numPieceTypes]ruleFunc{
	PieceGeneral:  generalRule,
	PieceAdvisor:  advisorRule,
	PieceElephant: elephantRule,
	PieceHorse:    horseRule,
	PieceRook:     rookRule,
	PieceCannon:   cannonRule,
	PieceSoldier:  soldierRule,
}

// IsLegal 判断 from 上的棋子能否走到 to（不考虑走完后己方是否被将军）
func IsLegal(b *Board, from, to Pos) bool {
	if !from.OnBoard() || !to.OnBoard() || from == to {
		return false
	}
	pc := b.PieceAt(from)
	if pc == NoPiece {
		return false
	}
	side := pc.Side()
	if dst := b.PieceAt(to); dst != NoPiece && dst.Side() == side {
		return false
	}
	pt := pc.Type()
	if int(pt) >= numPieceTypes || pieceRules[pt] == nil {
		return false
	}
	return pieceRules[pt](b, side, from, to)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// 同一行或同一列时，统计两点之间（不含两端）的棋子数；不共线返回 -1
func countBetween(b *Board, from, to Pos) int {
	n := 0
	switch {
	case from.Row == to.Row:
		lo, hi := min(from.Col, to.Col), max(from.Col, to.Col)
		for c := lo + 1; c < hi; c++ {
			if b.Squares[indexOf(from.Row, c)] != 0 {
				n++
			}
		}
	case from.Col == to.Col:
		lo, hi := min(from.Row, to.Row), max(from.Row, to.Row)
		for r := lo + 1; r < hi; r++ {
			if b.Squares[indexOf(r, from.Col)] != 0 {
				n++
			}
		}
	default:
		return -1
	}
	return n
}

// 车：横竖直走，中间不能有子
func rookRule(b *Board, _ Side, from, to Pos) bool {
	return countBetween(b, from, to) == 0
}

// 炮：横竖直走；不吃子时中间无子，吃子时中间恰好一个炮架
func cannonRule(b *Board, _ Side, from, to Pos) bool {
	n := countBetween(b, from, to)
	if n < 0 {
		return false
	}
	if b.PieceAt(to) != NoPiece {
		return n == 1
	}
	return n == 0
}

// 相：田字，不过河，象眼不能有子
func elephantRule(b *Board, side Side, from, to Pos) bool {
	if !onOwnHalf(side, to.Row) {
		return false
	}
	if abs(to.Row-from.Row) != 2 || abs(to.Col-from.Col) != 2 {
		return false
	}
	eye := Pos{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
	return b.PieceAt(eye) == NoPiece
}

// 士：九宫内斜走一格
func advisorRule(_ *Board, side Side, from, to Pos) bool {
	if !inPalace(side, to.Row, to.Col) {
		return false
	}
	return abs(to.Row-from.Row) == 1 && abs(to.Col-from.Col) == 1
}

// 将：九宫内上下左右一格，且走完后不能和对方将帅照面
func generalRule(b *Board, side Side, from, to Pos) bool {
	if !inPalace(side, to.Row, to.Col) {
		return false
	}
	if abs(to.Row-from.Row)+abs(to.Col-from.Col) != 1 {
		return false
	}
	scratch := *b
	scratch.Move(from, to)
	return !scratch.GeneralsFacing()
}
