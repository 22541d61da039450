// internal/eval/eval.go
package eval

import "network_go/internal/board"

/*
   启发指标
   ─────────
   h₁  连线数差（每颗子能直线看到的同色子数之和）
   h₂  目标区占据差（占一个 +10，两个都占 +30）

   任一方成网直接返回 ±WinScore，不再看启发项。
*/

// ─── 权重 ───
const (
	WinScore     = 97
	oneGoalBonus = 10
	twoGoalBonus = 30
)

// Evaluate 计算 player 视角分数
func Evaluate(g *board.Board, player int8) int {
	opp := board.Opponent(player)
	if g.HasNetwork(player) {
		return WinScore
	}
	if g.HasNetwork(opp) {
		return -WinScore
	}
	return side(g, player) - side(g, opp)
}

// side 单方得分：连线数 + 目标区奖励
func side(g *board.Board, color int8) int {
	connections := 0
	var start, end bool
	for _, p := range g.Pieces(color) {
		connections += len(g.FindConnections(p))
		if board.InGoal(p) {
			if board.InEndGoal(p) {
				end = true
			} else {
				start = true
			}
		}
	}
	switch {
	case start && end:
		return connections + twoGoalBonus
	case start || end:
		return connections + oneGoalBonus
	}
	return connections
}
