package board

import "testing"

func setAll(b *Board, color int8, cells ...Pos) {
	for _, p := range cells {
		b.Set(p.X, p.Y, color)
	}
}

func TestFindConnectionsStopsAtFirstPiece(t *testing.T) {
	b := NewBoard()
	setAll(b, PlayerA, Pos{3, 3}, Pos{3, 6}, Pos{1, 1}, Pos{0, 3}, Pos{6, 3})
	b.Set(5, 3, PlayerB) // 挡住 (6,3)

	p, _ := b.PieceAt(3, 3)
	got := b.FindConnections(p)
	want := map[Pos]bool{{3, 6}: true, {0, 3}: true, {1, 1}: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d connections, got %v", len(want), got)
	}
	for _, c := range got {
		if !want[c.Pos] {
			t.Fatalf("unexpected connection %v", c.Pos)
		}
		if c.Color != PlayerA {
			t.Fatalf("expected same-colour connection, got %v", c)
		}
	}
}

func TestFindConnectionsAtMostEight(t *testing.T) {
	b := NewBoard()
	for x := int8(1); x <= 5; x++ {
		for y := int8(1); y <= 5; y++ {
			b.Set(x, y, PlayerB)
		}
	}
	p, _ := b.PieceAt(3, 3)
	if got := b.FindConnections(p); len(got) != 8 {
		t.Fatalf("expected 8 adjacent connections, got %d", len(got))
	}
}

func TestTurns(t *testing.T) {
	pc := func(x, y int8) Piece { return Piece{Color: PlayerA, Pos: Pos{x, y}} }
	cases := []struct {
		name string
		path []Piece
		next Piece
		want bool
	}{
		{"short path", []Piece{pc(1, 3)}, pc(5, 3), true},
		{"same diagonal", []Piece{pc(1, 3), pc(3, 3), pc(5, 5)}, pc(6, 6), false},
		{"diagonal then column", []Piece{pc(1, 3), pc(3, 3), pc(5, 5)}, pc(5, 2), true},
		{"same column", []Piece{pc(1, 3), pc(3, 3), pc(3, 5)}, pc(3, 6), false},
		{"same row", []Piece{pc(1, 1), pc(4, 1)}, pc(6, 1), false},
		{"same anti-diagonal", []Piece{pc(5, 1), pc(3, 3)}, pc(1, 5), false},
		{"row then anti-diagonal", []Piece{pc(1, 3), pc(3, 3)}, pc(1, 5), true},
	}
	for _, c := range cases {
		if got := turns(c.path, c.next); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestHasNetwork(t *testing.T) {
	cases := []struct {
		name  string
		color int8
		cells []Pos
		want  bool
	}{
		{"empty", PlayerA, nil, false},
		{"seven pieces with a detour", PlayerA,
			[]Pos{{2, 0}, {1, 3}, {2, 5}, {3, 5}, {3, 3}, {5, 5}, {5, 7}}, true},
		{"six piece chain", PlayerA,
			[]Pos{{6, 0}, {6, 5}, {5, 5}, {3, 3}, {3, 5}, {5, 7}}, true},
		{"six piece chain for B", PlayerB,
			[]Pos{{0, 6}, {5, 6}, {5, 5}, {3, 3}, {5, 3}, {7, 5}}, true},
		{"no end goal piece", PlayerB,
			[]Pos{{0, 1}, {2, 2}, {3, 3}, {5, 1}, {5, 2}, {6, 3}}, false},
		{"long way round", PlayerB,
			[]Pos{{0, 1}, {2, 2}, {3, 3}, {5, 1}, {5, 2}, {7, 3}}, true},
		{"straight segment", PlayerA,
			[]Pos{{2, 0}, {2, 3}, {4, 3}, {6, 3}, {6, 5}, {4, 7}}, false},
		{"too short", PlayerA,
			[]Pos{{2, 0}, {2, 3}, {4, 3}, {4, 7}}, false},
	}
	for _, c := range cases {
		b := NewBoard()
		setAll(b, c.color, c.cells...)
		if got := b.HasNetwork(c.color); got != c.want {
			t.Fatalf("%s: expected %v, got %v\n%s", c.name, c.want, got, b)
		}
		if b.HasNetwork(Opponent(c.color)) {
			t.Fatalf("%s: opponent should have no network", c.name)
		}
	}
}

func TestHasNetworkBlockedByOpponent(t *testing.T) {
	b := NewBoard()
	setAll(b, PlayerA, Pos{6, 0}, Pos{6, 5}, Pos{5, 5}, Pos{3, 3}, Pos{3, 5}, Pos{5, 7})
	if !b.HasNetwork(PlayerA) {
		t.Fatalf("expected network before blocking")
	}
	b.Set(4, 4, PlayerB) // 切断 (5,5)-(3,3)
	if b.HasNetwork(PlayerA) {
		t.Fatalf("expected blocked network\n%s", b)
	}
}

func TestWinner(t *testing.T) {
	b := NewBoard()
	if _, ok := b.Winner(PlayerA); ok {
		t.Fatalf("expected no winner on an empty board")
	}
	setAll(b, PlayerA, Pos{6, 0}, Pos{6, 5}, Pos{5, 5}, Pos{3, 3}, Pos{3, 5}, Pos{5, 7})
	if w, ok := b.Winner(PlayerB); !ok || w != PlayerA {
		t.Fatalf("expected A to win, got %d %v", w, ok)
	}
}
