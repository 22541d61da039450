package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/donyori/gorecover"
	"github.com/pkg/profile"

	"network_go/internal/board"
	"network_go/internal/config"
	"network_go/internal/player"
	"network_go/internal/zobrist"
)

func main() {
	var runErr error
	err := gorecover.Recover(func() {
		runErr = run()
	})
	if err == nil {
		err = runErr
	}
	if err != nil {
		log.Printf("[driver] %v", err)
		os.Exit(1)
	}
}

func run() error {
	// ──────── 命令行参数 ────────
	var (
		settingsPath = flag.String("settings", "", "JSON settings file")
		depthA       = flag.Int("depth-a", 0, "search depth for player A (overrides settings)")
		depthB       = flag.Int("depth-b", 0, "search depth for player B (overrides settings)")
		maxTurns     = flag.Int("turns", 0, "maximum number of machine turns (overrides settings)")
		opening      = flag.String("opening", "", `scripted opening, e.g. "add 3 3;add 1 0"`)
		prof         = flag.String("profile", "", "write a cpu or mem profile to the working directory")
		quiet        = flag.Bool("quiet", false, "only print the final board")
	)
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *prof)
	}

	// ──────── 设置 ────────
	settings := config.NewSettings()
	if *settingsPath != "" {
		loaded, err := config.Load(*settingsPath)
		if err != nil {
			return err
		}
		settings = loaded
		log.Printf("[config] loaded %s", *settingsPath)
	}
	if *depthA > 0 {
		settings.DepthA = *depthA
	}
	if *depthB > 0 {
		settings.DepthB = *depthB
	}
	if *maxTurns > 0 {
		settings.MaxTurns = *maxTurns
	}
	if *opening != "" {
		settings.Opening = strings.Split(*opening, ";")
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	script, err := settings.OpeningMoves()
	if err != nil {
		return err
	}

	// ──────── 初始化棋局 ────────
	m := newMatch(settings)
	log.Printf("[driver] Network started: depth A=%d B=%d | max turns=%d",
		settings.DepthA, settings.DepthB, settings.MaxTurns)
	if err := m.replay(script); err != nil {
		return err
	}

	// ──────── 主循环 ────────
	res := m.play(*quiet)
	fmt.Print(m.players[board.PlayerA].Board().Render(settings.Chars()))
	log.Printf("[driver] %s after %d turns", res, m.turn)
	return nil
}

type match struct {
	settings *config.Settings
	players  [2]*player.Player
	mover    int8
	turn     int
	hash     uint64
	seen     map[uint64]int
}

func newMatch(s *config.Settings) *match {
	m := &match{
		settings: s,
		players: [2]*player.Player{
			player.NewWithDepth(board.PlayerA, s.DepthA),
			player.NewWithDepth(board.PlayerB, s.DepthB),
		},
		mover: board.PlayerB,
		seen:  make(map[uint64]int),
	}
	m.hash = zobrist.HashBoard(board.NewBoard(), m.mover)
	m.seen[m.hash] = 1
	return m
}

var errRejected = errors.New("move rejected")

// record 把 mv 同步到双方棋盘；chosen 为 true 时 mv 已由机器落在自己盘上
func (m *match) record(mv board.Move, chosen bool) error {
	me, opp := m.players[m.mover], m.players[board.Opponent(m.mover)]
	if !chosen && !me.ForceMove(mv) {
		return fmt.Errorf("%w: %v by %s", errRejected, mv, name(m.mover))
	}
	if !opp.OpponentMove(mv) {
		return fmt.Errorf("%w: %v by %s", errRejected, mv, name(m.mover))
	}
	m.hash = zobrist.Update(m.hash, mv, m.mover)
	m.seen[m.hash]++
	m.mover = board.Opponent(m.mover)
	return nil
}

func (m *match) replay(script []board.Move) error {
	for i, mv := range script {
		if err := m.record(mv, false); err != nil {
			return fmt.Errorf("opening move %d: %w", i+1, err)
		}
	}
	return nil
}

func (m *match) play(quiet bool) string {
	// 开局脚本可能已经分出胜负
	m.turn = 0
	if res, over := m.decided(); over {
		return res
	}
	for m.turn = 1; m.turn <= m.settings.MaxTurns; m.turn++ {
		mover := m.mover
		p := m.players[mover]
		mv := p.ChooseMove()
		if mv.Kind == board.Quit {
			return fmt.Sprintf("%s has no legal move", name(mover))
		}
		if err := m.record(mv, true); err != nil {
			return err.Error()
		}
		if !quiet {
			log.Printf("[driver] turn %d: %s plays %v (nodes=%d)",
				m.turn, name(mover), mv, p.LastStats().Nodes)
		}
		if res, over := m.decided(); over {
			return res
		}
	}
	m.turn = m.settings.MaxTurns
	return "draw by turn limit"
}

// decided 检查刚走完一步后的局面：先看胜负，再看重复
func (m *match) decided() (string, bool) {
	last := board.Opponent(m.mover)
	if w, ok := m.players[m.mover].Board().Winner(last); ok {
		return fmt.Sprintf("%s wins", name(w)), true
	}
	if m.seen[m.hash] >= m.settings.Repetitions {
		return "draw by repetition", true
	}
	return "", false
}

func name(color int8) string {
	if color == board.PlayerA {
		return "A"
	}
	return "B"
}
