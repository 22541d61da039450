// internal/player/player.go
// player 对外的机器玩家：持有唯一的权威棋盘，替自己选棋并记录双方走子。
package player

import (
	"network_go/internal/board"
	"network_go/internal/search"
)

const DefaultDepth = 3

type Player struct {
	color, opp int8
	depth      int
	current    *board.Board
	last       search.Stats
}

// New 以默认深度创建；color 为 0 (A) 或 1 (B)，B 先手
func New(color int8) *Player {
	return NewWithDepth(color, DefaultDepth)
}

// NewWithDepth depth 小于 1 按 1 处理
func NewWithDepth(color int8, depth int) *Player {
	if depth < 1 {
		depth = 1
	}
	return &Player{
		color:   color,
		opp:     board.Opponent(color),
		depth:   depth,
		current: board.NewBoard(),
	}
}

func (p *Player) Color() int8 { return p.color }

func (p *Player) Depth() int { return p.depth }

// Board 返回权威棋盘的副本
func (p *Player) Board() *board.Board { return p.current.Copy() }

// LastStats 最近一次 ChooseMove 的搜索统计
func (p *Player) LastStats() search.Stats { return p.last }

// ChooseMove 搜索并把选出的棋走在自己的棋盘上；无棋可走时返回 Quit
func (p *Player) ChooseMove() board.Move {
	best, stats := search.BestMove(p.current, p.color, p.depth)
	p.last = stats
	p.current.Apply(best.Move, p.color)
	return best.Move
}

// OpponentMove 合法则记为对手走子并返回 true，否则不改棋盘
func (p *Player) OpponentMove(m board.Move) bool {
	return p.record(m, p.opp)
}

// ForceMove 同 OpponentMove，但记为自己走子，用于摆题
func (p *Player) ForceMove(m board.Move) bool {
	return p.record(m, p.color)
}

func (p *Player) record(m board.Move, color int8) bool {
	if !p.current.IsLegal(m, color) {
		return false
	}
	p.current.Apply(m, color)
	return true
}
