// File internal/board/network.go
package board

import "container/list"

// MinNetwork 网络至少包含的棋子数
const MinNetwork = 6

// FindConnections 沿 8 个方向直线扫描，每个方向遇到的第一颗子若同色即为连线
func (b *Board) FindConnections(p Piece) []Piece {
	out := make([]Piece, 0, len(DIRECTIONS))
	for _, d := range DIRECTIONS {
		x, y := p.X+d[0], p.Y+d[1]
		for InBounds(x, y) {
			if tok := b.Cells[x][y]; tok != TokenEmpty {
				if tok == p.Color {
					out = append(out, Piece{Color: tok, Pos: Pos{x, y}})
				}
				break
			}
			x += d[0]
			y += d[1]
		}
	}
	return out
}

// InGoal 棋子是否在自己的任一目标区
func InGoal(p Piece) bool {
	if p.Color == PlayerA {
		return p.Y == 0 || p.Y == Size-1
	}
	return p.X == 0 || p.X == Size-1
}

// InEndGoal 棋子是否在自己的终点目标区
func InEndGoal(p Piece) bool {
	if p.Color == PlayerA {
		return p.Y == Size-1
	}
	return p.X == Size-1
}

// turns 新段 last→next 不得与上一段 prev→last 平行（同行、同列、同斜线）
func turns(path []Piece, next Piece) bool {
	if len(path) < 2 {
		return true
	}
	prev, last := path[len(path)-2], path[len(path)-1]
	dx1, dy1 := sign(last.X-prev.X), sign(last.Y-prev.Y)
	dx2, dy2 := sign(next.X-last.X), sign(next.Y-last.Y)
	if dx1 == dx2 && dy1 == dy2 {
		return false
	}
	return !(dx1 == -dx2 && dy1 == -dy2)
}

func visited(path []Piece, p Piece) bool {
	for _, q := range path {
		if q.Pos == p.Pos {
			return true
		}
	}
	return false
}

// ---------------- 网络检测 -----------------

// netState 搜索队列元素：当前棋子 + 已走路径
type netState struct {
	chip Piece
	path []Piece
}

// HasNetwork 从起点目标区的每颗子出发做 BFS，每次调用都重新计算
func (b *Board) HasNetwork(color int8) bool {
	for i := int8(1); i <= Size-2; i++ {
		x, y := i, int8(0)
		if color == PlayerB {
			x, y = 0, i
		}
		if b.Cells[x][y] != color {
			continue
		}
		if b.searchNetwork(Piece{Color: color, Pos: Pos{x, y}}) {
			return true
		}
	}
	return false
}

func (b *Board) searchNetwork(start Piece) bool {
	q := list.New()
	q.PushBack(netState{chip: start, path: []Piece{start}})
	for q.Len() > 0 {
		cur := q.Remove(q.Front()).(netState)
		for _, next := range b.FindConnections(cur.chip) {
			if visited(cur.path, next) || !turns(cur.path, next) {
				continue
			}
			path := make([]Piece, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = next

			if len(path) >= MinNetwork && InEndGoal(next) {
				return true
			}
			// 不够长就进了目标区，这条路作废
			if len(path) < MinNetwork && InGoal(next) {
				continue
			}
			q.PushBack(netState{chip: next, path: path})
		}
	}
	return false
}

// Winner 若有一方成网返回其颜色，先查 mover
func (b *Board) Winner(mover int8) (int8, bool) {
	if b.HasNetwork(mover) {
		return mover, true
	}
	if opp := Opponent(mover); b.HasNetwork(opp) {
		return opp, true
	}
	return TokenEmpty, false
}
