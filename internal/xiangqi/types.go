package xiangqi

import "fmt"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent 返回对方；NoSide 的对方仍是 NoSide
func (s Side) Opponent() Side {
	return opposite(s)
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 帅 / 将
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceHorse              // 马
	PieceRook               // 车
	PieceCannon             // 炮
	PieceSoldier            // 兵 / 卒

	numPieceTypes = int(PieceSoldier) + 1
)

func (pt PieceType) String() string {
	switch pt {
	case PieceGeneral:
		return "general"
	case PieceAdvisor:
		return "advisor"
	case PieceElephant:
		return "elephant"
	case PieceHorse:
		return "horse"
	case PieceRook:
		return "rook"
	case PieceCannon:
		return "cannon"
	case PieceSoldier:
		return "soldier"
	default:
		return "none"
	}
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

const NoPiece Piece = 0

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return NoPiece
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) IsEmpty() bool { return p == NoPiece }

func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	return p.Side().String() + " " + p.Type().String()
}

// Pos 棋盘坐标：Row 0 是黑方底线，Row 9 是红方底线
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board 10x9 棋盘，按值拷贝即可得到一块独立的草稿棋盘
type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}
