// File internal/config/config.go
// config 自对弈驱动的设置文件（JSON）。
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"network_go/internal/board"
	"network_go/internal/player"
)

type BoardPrintSettings struct {
	EmptyChar string `json:"empty_char,omitempty"`
	AChar     string `json:"a_char,omitempty"`
	BChar     string `json:"b_char,omitempty"`
}

type Settings struct {
	DepthA      int                 `json:"depth_a,omitempty"`
	DepthB      int                 `json:"depth_b,omitempty"`
	MaxTurns    int                 `json:"max_turns,omitempty"`
	Repetitions int                 `json:"repetitions,omitempty"` // 同一局面出现几次判和
	Opening     []string            `json:"opening,omitempty"`     // 开局脚本，B 先走，双方交替
	BoardPrint  *BoardPrintSettings `json:"board_print,omitempty"`
}

type InvalidSettingError struct {
	field string
	value int
}

func NewInvalidSettingError(field string, value int) error {
	return &InvalidSettingError{field: field, value: value}
}

func (ise *InvalidSettingError) Error() string {
	return fmt.Sprintf("setting %s must be positive, got %d", ise.field, ise.value)
}

func NewSettings() *Settings {
	return &Settings{
		DepthA:      player.DefaultDepth,
		DepthB:      player.DefaultDepth,
		MaxTurns:    200,
		Repetitions: 3,
		BoardPrint: &BoardPrintSettings{
			EmptyChar: board.DefaultChars.Empty,
			AChar:     board.DefaultChars.A,
			BChar:     board.DefaultChars.B,
		},
	}
}

// Load 读取设置文件，缺省字段沿用 NewSettings 的值
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := NewSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Store(path string, s *Settings) error {
	if s == nil {
		return errors.New("settings is nil")
	}
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}

func (s *Settings) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"depth_a", s.DepthA},
		{"depth_b", s.DepthB},
		{"max_turns", s.MaxTurns},
		{"repetitions", s.Repetitions},
	} {
		if f.value < 1 {
			return NewInvalidSettingError(f.name, f.value)
		}
	}
	return nil
}

// Chars 渲染字符，没配的用默认值
func (s *Settings) Chars() board.Chars {
	ch := board.DefaultChars
	if bp := s.BoardPrint; bp != nil {
		if bp.EmptyChar != "" {
			ch.Empty = bp.EmptyChar
		}
		if bp.AChar != "" {
			ch.A = bp.AChar
		}
		if bp.BChar != "" {
			ch.B = bp.BChar
		}
	}
	return ch
}

// OpeningMoves 解析开局脚本
func (s *Settings) OpeningMoves() ([]board.Move, error) {
	out := make([]board.Move, 0, len(s.Opening))
	for i, line := range s.Opening {
		m, err := board.ParseMove(line)
		if err != nil {
			return nil, fmt.Errorf("opening move %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}
