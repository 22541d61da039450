// File internal/board/rules.go
package board

import "golang.org/x/exp/constraints"

// ---------------- 内部辅助 -----------------

func sign[T constraints.Signed](x T) T {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// forbidden 不能占对方的目标区
func forbidden(x, y, color int8) bool {
	if color == PlayerA {
		return (x == 0 || x == Size-1) && y >= 1 && y <= Size-2
	}
	return (y == 0 || y == Size-1) && x >= 1 && x <= Size-2
}

// hasCluster 假设 (x,y) 为空：数 3×3 邻域同色子，≥2 即成团；
// 恰好 1 个时再看那颗子自己的 3×3 邻域。
func (b *Board) hasCluster(x, y, color int8) bool {
	count := 0
	var nx, ny int8
	for i := x - 1; i <= x+1; i++ {
		for j := y - 1; j <= y+1; j++ {
			if b.TokenAt(i, j) == color {
				count++
				nx, ny = i, j
			}
		}
	}
	if count >= 2 {
		return true
	}
	if count == 1 {
		count2 := 0
		for i := nx - 1; i <= nx+1; i++ {
			for j := ny - 1; j <= ny+1; j++ {
				if b.TokenAt(i, j) == color {
					count2++
				}
			}
		}
		return count2 >= 2
	}
	return false
}

// landable 落点公共检查：角、成团、对方目标区
func (b *Board) landable(p Pos, color int8) bool {
	if IsCorner(p.X, p.Y) {
		return false
	}
	if b.hasCluster(p.X, p.Y, color) {
		return false
	}
	return !forbidden(p.X, p.Y, color)
}

// --------------- 合法性 ----------------

// IsLegal 判断 color 方走 m 是否合法
func (b *Board) IsLegal(m Move, color int8) bool {
	switch m.Kind {
	case Add:
		if b.Count(color) >= Quota {
			return false
		}
		if !InBounds(m.To.X, m.To.Y) || b.HasPiece(m.To.X, m.To.Y) {
			return false
		}
		return b.landable(m.To, color)
	case Step:
		// 十子全部落完才能挪子
		if b.Count(color) != Quota {
			return false
		}
		if m.To == m.From || !InBounds(m.To.X, m.To.Y) {
			return false
		}
		if b.HasPiece(m.To.X, m.To.Y) || !b.HasPiece(m.From.X, m.From.Y) {
			return false
		}
		if b.TokenAt(m.From.X, m.From.Y) != color {
			return false
		}
		// 成团检查时被挪的子仍在 From 上
		return b.landable(m.To, color)
	}
	return false
}

// ----------------- 盘面修改 ---------------------

// Apply 只执行合法走法，非法走法直接忽略
func (b *Board) Apply(m Move, color int8) {
	if !b.IsLegal(m, color) {
		return
	}
	switch m.Kind {
	case Add:
		b.Set(m.To.X, m.To.Y, color)
	case Step:
		b.Cells[m.To.X][m.To.Y] = color
		b.Cells[m.From.X][m.From.Y] = TokenEmpty
	}
}

// ----------------- 走法生成 ---------------------

// LegalMoves 未满十子只生成落子，满十子只生成挪子
func (b *Board) LegalMoves(color int8) []Move {
	switch n := b.Count(color); {
	case n < Quota:
		out := make([]Move, 0, Size*Size)
		for x := int8(0); x < Size; x++ {
			for y := int8(0); y < Size; y++ {
				if m := AddMove(x, y); b.IsLegal(m, color) {
					out = append(out, m)
				}
			}
		}
		return out
	case n == Quota:
		out := make([]Move, 0, 256)
		for x1 := int8(0); x1 < Size; x1++ {
			for x2 := int8(0); x2 < Size; x2++ {
				for y1 := int8(0); y1 < Size; y1++ {
					for y2 := int8(0); y2 < Size; y2++ {
						if m := StepMove(x1, y1, x2, y2); b.IsLegal(m, color) {
							out = append(out, m)
						}
					}
				}
			}
		}
		return out
	}
	return nil
}
