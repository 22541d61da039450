// internal/search/search.go
package search

import (
	"network_go/internal/board"
	"network_go/internal/eval"
)

const (
	Bound  = 100 // 根节点窗口 [-Bound, Bound]
	winCut = 100 // 分数达到即不再看兄弟节点
)

// Side 轮到哪一方：己方取极大，对方取极小
type Side bool

const (
	Computer Side = true
	Opponent Side = false
)

// Best 搜索结果；Move 为零值 (Quit) 表示没有可走的棋
type Best struct {
	Move  board.Move
	Score int
}

// Stats 本次搜索访问的节点数
type Stats struct {
	Nodes int
}

/* ──────────────── 公开 API ──────────────── */

// BestMove 以 self 为己方，从 root 开始做 depth 层 α-β 搜索。root 不会被修改。
func BestMove(root *board.Board, self int8, depth int) (Best, Stats) {
	s := &searcher{self: self, opp: board.Opponent(self)}
	best := s.minimax(root, Computer, depth, -Bound, Bound)
	return best, Stats{Nodes: s.nodes}
}

/* ──────────────── Minimax + α-β ──────────────── */

type searcher struct {
	self, opp int8
	nodes     int
}

// leaf 终局或到达深度：剩余深度加进分数，赢得越早分越高，输得越晚分越高
func (s *searcher) leaf(node *board.Board, depth int) Best {
	return Best{Score: eval.Evaluate(node, s.self) + depth}
}

func (s *searcher) minimax(node *board.Board, side Side, depth, alpha, beta int) Best {
	s.nodes++
	if node.HasNetwork(s.self) || node.HasNetwork(s.opp) || depth <= 0 {
		return s.leaf(node, depth)
	}

	mover := s.self
	if side == Opponent {
		mover = s.opp
	}
	moves := node.LegalMoves(mover)
	if len(moves) == 0 {
		return s.leaf(node, depth)
	}

	best := Best{Move: moves[0], Score: alpha}
	if side == Opponent {
		best.Score = beta
	}

	for _, m := range moves {
		child := node.Copy()
		child.Apply(m, mover)
		reply := s.minimax(child, !side, depth-1, alpha, beta)

		if side == Computer && reply.Score > best.Score {
			best = Best{Move: m, Score: reply.Score}
			alpha = reply.Score
		} else if side == Opponent && reply.Score < best.Score {
			best = Best{Move: m, Score: reply.Score}
			beta = reply.Score
		}

		if best.Score >= winCut {
			break
		}
		if alpha >= beta {
			break // 剪枝
		}
	}
	return best
}
