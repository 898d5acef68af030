package xiangqi

// 马：日字。竖走日（2 行 1 列）时，起点列和终点列在中间那一行的两个格子都算马腿；
// 横走日同理。任意一个马腿有子即为蹩马腿。
func horseRule(b *Board, _ Side, from, to Pos) bool {
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if dr+dc != 3 || dr == 0 || dc == 0 {
		return false
	}
	for _, leg := range horseLegs(from, to) {
		if b.PieceAt(leg) != NoPiece {
			return false
		}
	}
	return true
}

func horseLegs(from, to Pos) [2]Pos {
	if abs(to.Row-from.Row) == 2 {
		mid := (from.Row + to.Row) / 2
		return [2]Pos{{Row: mid, Col: from.Col}, {Row: mid, Col: to.Col}}
	}
	mid := (from.Col + to.Col) / 2
	return [2]Pos{{Row: from.Row, Col: mid}, {Row: to.Row, Col: mid}}
}
