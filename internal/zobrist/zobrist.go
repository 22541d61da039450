// File: internal/zobrist/zobrist.go
package zobrist

import (
	"math/rand"

	"network_go/internal/board"
)

const (
	Players   = 2                       // A / B
	Positions = board.Size * board.Size // 64 格
	Seed      = 0x6E6574776F726B        // 固定种子：同一局面在不同进程里哈希一致
)

var (
	Keys    [Players][Positions]uint64
	SideKey uint64 // 轮到 B 走时异或
)

func init() {
	rng := rand.New(rand.NewSource(Seed))
	for p := 0; p < Players; p++ {
		for i := 0; i < Positions; i++ {
			// 避免生成 0（XOR 不起作用）
			v := rng.Uint64()
			for v == 0 {
				v = rng.Uint64()
			}
			Keys[p][i] = v
		}
	}
	SideKey = rng.Uint64() | 1
}

func index(x, y int8) int { return int(x)*board.Size + int(y) }

// Toggle 对 (player, x, y) 的键做一次 XOR，并返回新哈希。
// 用法：hash = zobrist.Toggle(hash, player, from)  // 移走
//
//	hash = zobrist.Toggle(hash, player, to)  // 落下
func Toggle(hash uint64, player int8, p board.Pos) uint64 {
	return hash ^ Keys[player][index(p.X, p.Y)]
}

// HashBoard 根据整盘棋子与轮走方计算哈希
func HashBoard(b *board.Board, toMove int8) uint64 {
	var h uint64
	for x := int8(0); x < board.Size; x++ {
		for y := int8(0); y < board.Size; y++ {
			if tok := b.Cells[x][y]; tok != board.TokenEmpty {
				h ^= Keys[tok][index(x, y)]
			}
		}
	}
	if toMove == board.PlayerB {
		h ^= SideKey
	}
	return h
}

// Update 走完 m 后的增量哈希（轮走方同时切换）；m 须对 color 合法
func Update(hash uint64, m board.Move, color int8) uint64 {
	switch m.Kind {
	case board.Add:
		hash = Toggle(hash, color, m.To)
	case board.Step:
		hash = Toggle(hash, color, m.From)
		hash = Toggle(hash, color, m.To)
	}
	return hash ^ SideKey
}
