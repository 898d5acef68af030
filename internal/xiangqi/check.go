package xiangqi

// GeneralsFacing 两个将帅同列且中间无子（飞将）
func (b *Board) GeneralsFacing() bool {
	red, okRed := b.generalPos(Red)
	black, okBlack := b.generalPos(Black)
	if !okRed || !okBlack {
		// 有一方将帅已经没了，不存在照面
		return false
	}
	if red.Col != black.Col {
		return false
	}
	return countBetween(b, red, black) == 0
}

// IsAttacked 判断 sq 是否被 bySide 攻击：对方任意一个棋子能合法走到这里即为攻击。
func (b *Board) IsAttacked(sq Pos, bySide Side) bool {
	for s := 0; s < NumSquares; s++ {
		pc := b.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		if IsLegal(b, posOf(s), sq) {
			return true
		}
	}
	return false
}

// IsInCheck 判断 side 这一方的将帅是否被将军；将帅不在盘上时返回 false
func (b *Board) IsInCheck(side Side) bool {
	gen, ok := b.generalPos(side)
	if !ok {
		return false
	}
	return b.IsAttacked(gen, opposite(side))
}

// IsCheckmate 被将军且没有任何一步能解将。
// 每个候选走法都在棋盘的拷贝上试走，原棋盘不会被改动。
func (b *Board) IsCheckmate(side Side) bool {
	if !b.IsInCheck(side) {
		return false
	}
	for _, mv := range b.MovesForSide(side) {
		scratch := *b
		scratch.Move(mv.From, mv.To)
		if !scratch.IsInCheck(side) {
			return false
		}
	}
	return true
}

// LegalMovesFrom 列出 from 上棋子所有符合走法的落点（伪合法：不检查自将）
func (b *Board) LegalMovesFrom(from Pos) []Pos {
	pc := b.PieceAt(from)
	if pc == NoPiece {
		return nil
	}
	var out []Pos
	for sq := 0; sq < NumSquares; sq++ {
		to := posOf(sq)
		if IsLegal(b, from, to) {
			out = append(out, to)
		}
	}
	return out
}

// MovesForSide 生成指定一方的全部伪合法走法
func (b *Board) MovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		from := posOf(sq)
		for _, to := range b.LegalMovesFrom(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
