package xiangqi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < numPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq int) uint64 {
	if pc == 0 || sq < 0 || sq >= NumSquares {
		return 0
	}
	sideIdx := 0
	if pc.Side() == Black {
		sideIdx = 1
	}
	pt := int(pc.Type())
	if pt <= 0 || pt >= numPieceTypes {
		return 0
	}
	return zobristPieces[sideIdx][pt][sq]
}

// Hash 全量计算棋盘 + 走子方的 Zobrist 哈希，存档时用来校验盘面是否被篡改。
func (b *Board) Hash(toMove Side) uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		h ^= pieceHashKey(pc, sq)
	}
	if toMove == Black {
		h ^= zobristSide
	}
	return h
}
