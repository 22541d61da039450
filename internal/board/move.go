// File internal/board/move.go
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type MoveKind uint8

const (
	Quit MoveKind = iota // 零值：没有可走的棋
	Add
	Step
)

// Move 不带颜色，颜色由调用方在应用时给出。
//
//	Add : To 为落子格
//	Step: To 为目标空格，From 为要移动的己方棋子
type Move struct {
	Kind     MoveKind
	To, From Pos
}

func AddMove(x, y int8) Move { return Move{Kind: Add, To: Pos{x, y}} }

// StepMove 把 (x2,y2) 上的棋子挪到 (x1,y1)
func StepMove(x1, y1, x2, y2 int8) Move {
	return Move{Kind: Step, To: Pos{x1, y1}, From: Pos{x2, y2}}
}

func (m Move) String() string {
	switch m.Kind {
	case Add:
		return fmt.Sprintf("[add to %d%d]", m.To.X, m.To.Y)
	case Step:
		return fmt.Sprintf("[step from %d%d to %d%d]", m.From.X, m.From.Y, m.To.X, m.To.Y)
	default:
		return "[quit]"
	}
}

// ---------------- 解析 -----------------

var ErrEmptyMove = errors.New("move text is empty")

type SyntaxError struct {
	s string
}

type PositionOutOfRangeError struct {
	x, y int
}

func NewSyntaxError(s string) error {
	return &SyntaxError{s: s}
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("move %q is malformed", se.s)
}

func NewPositionOutOfRangeError(x, y int) error {
	return &PositionOutOfRangeError{x: x, y: y}
}

func (pore *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position is out of range(0-%d), x: %d, y: %d",
		Size-1, pore.x, pore.y)
}

// ParseMove 接受两种写法：
//
//	add 3 4 / step 3 4 5 6 / quit
//	[add to 34] / [step from 56 to 34] / [quit]
func ParseMove(s string) (Move, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Move{}, ErrEmptyMove
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		return parseBracket(text)
	}

	fields := strings.Fields(strings.ToLower(text))
	raw := make([]int, 0, 4)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, NewSyntaxError(s)
		}
		raw = append(raw, n)
	}
	if len(raw)%2 != 0 {
		return Move{}, NewSyntaxError(s)
	}
	nums := make([]int8, len(raw))
	for i := 0; i < len(raw); i += 2 {
		x, y := raw[i], raw[i+1]
		if x < 0 || x >= Size || y < 0 || y >= Size {
			return Move{}, NewPositionOutOfRangeError(x, y)
		}
		nums[i], nums[i+1] = int8(x), int8(y)
	}
	switch {
	case fields[0] == "quit" && len(nums) == 0:
		return Move{}, nil
	case fields[0] == "add" && len(nums) == 2:
		return AddMove(nums[0], nums[1]), nil
	case fields[0] == "step" && len(nums) == 4:
		return StepMove(nums[0], nums[1], nums[2], nums[3]), nil
	}
	return Move{}, NewSyntaxError(s)
}

func parseBracket(s string) (Move, error) {
	body := strings.ToLower(strings.TrimSpace(s[1 : len(s)-1]))
	if body == "quit" {
		return Move{}, nil
	}
	var a, b string
	if n, _ := fmt.Sscanf(body, "add to %s", &a); n == 1 {
		x, y, err := parseCell(a, s)
		if err != nil {
			return Move{}, err
		}
		return AddMove(x, y), nil
	}
	if n, _ := fmt.Sscanf(body, "step from %s to %s", &b, &a); n == 2 {
		x2, y2, err := parseCell(b, s)
		if err != nil {
			return Move{}, err
		}
		x1, y1, err := parseCell(a, s)
		if err != nil {
			return Move{}, err
		}
		return StepMove(x1, y1, x2, y2), nil
	}
	return Move{}, NewSyntaxError(s)
}

// parseCell 解析 "34" 这种两位坐标
func parseCell(cell, orig string) (int8, int8, error) {
	if len(cell) != 2 {
		return 0, 0, NewSyntaxError(orig)
	}
	x, y := int(cell[0])-'0', int(cell[1])-'0'
	if x < 0 || x > 9 || y < 0 || y > 9 {
		return 0, 0, NewSyntaxError(orig)
	}
	if x >= Size || y >= Size {
		return 0, 0, NewPositionOutOfRangeError(x, y)
	}
	return int8(x), int8(y), nil
}
