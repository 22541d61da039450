// File internal/board/board.go
package board

const (
	Size       = 8  // 棋盘边长
	Quota      = 10 // 每方最多落子数
	TokenEmpty = int8(-1)
	PlayerA    = int8(0) // 目标区：y=0 行 / y=7 行
	PlayerB    = int8(1) // 目标区：x=0 列 / x=7 列，先手
)

// DIRECTIONS 八个方向 (dx, dy)，顺序即连线扫描顺序
var DIRECTIONS = [8][2]int8{
	{1, 0},   // RIGHT
	{0, 1},   // UP
	{-1, 0},  // LEFT
	{0, -1},  // DOWN
	{1, 1},   // UP_RIGHT
	{1, -1},  // DOWN_RIGHT
	{-1, 1},  // UP_LEFT
	{-1, -1}, // DOWN_LEFT
}

// Pos 棋盘坐标，x/y 均在 [0,7]
type Pos struct{ X, Y int8 }

// Piece 棋子：颜色 + 所在格
type Piece struct {
	Color int8
	Pos
}

// Board 8×8 棋盘。Cells[x][y] 存颜色或 TokenEmpty。
// 整个结构都是定长数组，值拷贝即深拷贝。
type Board struct {
	Cells  [Size][Size]int8
	counts [2]int8
}

// --------------------- 构造 & 拷贝 ------------------------

func NewBoard() *Board {
	b := &Board{}
	b.reset()
	return b
}

func (b *Board) reset() {
	for x := range b.Cells {
		for y := range b.Cells[x] {
			b.Cells[x][y] = TokenEmpty
		}
	}
	b.counts = [2]int8{}
}

// Copy 返回一个与原盘完全独立的副本
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// -------------------- 公共工具 -----------------------------

// Opponent 对手颜色
func Opponent(color int8) int8 { return color ^ 1 }

func InBounds(x, y int8) bool { return x >= 0 && x < Size && y >= 0 && y < Size }

// IsCorner 四个角永远不能落子
func IsCorner(x, y int8) bool {
	return (x == 0 || x == Size-1) && (y == 0 || y == Size-1)
}

// TokenAt 越界返回 TokenEmpty
func (b *Board) TokenAt(x, y int8) int8 {
	if !InBounds(x, y) {
		return TokenEmpty
	}
	return b.Cells[x][y]
}

func (b *Board) HasPiece(x, y int8) bool { return b.TokenAt(x, y) != TokenEmpty }

// PieceAt 越界或空格返回 ok=false
func (b *Board) PieceAt(x, y int8) (Piece, bool) {
	tok := b.TokenAt(x, y)
	if tok == TokenEmpty {
		return Piece{}, false
	}
	return Piece{Color: tok, Pos: Pos{x, y}}, true
}

// Count 某方在盘上的棋子数
func (b *Board) Count(color int8) int { return int(b.counts[color]) }

// Pieces 按 x 再 y 的顺序列出某方全部棋子
func (b *Board) Pieces(color int8) []Piece {
	out := make([]Piece, 0, Quota)
	for x := int8(0); x < Size; x++ {
		for y := int8(0); y < Size; y++ {
			if b.Cells[x][y] == color {
				out = append(out, Piece{Color: color, Pos: Pos{x, y}})
			}
		}
	}
	return out
}

// Set 直接写格子（不做合法性检查），用于摆局面；token 为 TokenEmpty 表示清空。
func (b *Board) Set(x, y, token int8) {
	if !InBounds(x, y) {
		return
	}
	if old := b.Cells[x][y]; old != TokenEmpty {
		b.counts[old]--
	}
	b.Cells[x][y] = token
	if token != TokenEmpty {
		b.counts[token]++
	}
}
