// File internal/board/print.go
package board

import (
	"strconv"
	"strings"
)

// Chars 渲染用字符
type Chars struct {
	Empty, A, B string
}

var DefaultChars = Chars{Empty: ".", A: "x", B: "o"}

// Render 按行输出：每行一个 y，列为 x，左侧和顶部带坐标
func (b *Board) Render(ch Chars) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < Size; x++ {
		sb.WriteString(" " + strconv.Itoa(x))
	}
	sb.WriteByte('\n')
	for y := int8(0); y < Size; y++ {
		sb.WriteString(strconv.Itoa(int(y)) + " ")
		for x := int8(0); x < Size; x++ {
			sb.WriteByte(' ')
			switch b.Cells[x][y] {
			case PlayerA:
				sb.WriteString(ch.A)
			case PlayerB:
				sb.WriteString(ch.B)
			default:
				sb.WriteString(ch.Empty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string { return b.Render(DefaultChars) }
