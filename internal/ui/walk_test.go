package ui

import "testing"

func TestSnapshot_BFSOrder(t *testing.T) {
	// R with children [A, B]: snapshot returns [R, A, B] before grandchildren.
	grandchild := newNode(Attrs{Text: "GC"})
	a := newNode(Attrs{Text: "A"}, grandchild)
	b := newNode(Attrs{Text: "B"})
	root := newNode(Attrs{Text: "R"}, a, b)

	dumps := Snapshot(root, 10)
	want := []string{"R", "A", "B", "GC"}
	if len(dumps) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(dumps))
	}
	for i, text := range want {
		if dumps[i].Text != text {
			t.Errorf("dumps[%d].Text = %q, want %q", i, dumps[i].Text, text)
		}
	}
	wantPaths := []string{"r", "r/0", "r/1", "r/0/0"}
	for i, p := range wantPaths {
		if dumps[i].Path != p {
			t.Errorf("dumps[%d].Path = %q, want %q", i, dumps[i].Path, p)
		}
	}
}

func TestSnapshot_MaxNodesCap(t *testing.T) {
	root := newNode(Attrs{Text: "R"},
		newNode(Attrs{Text: "A"}),
		newNode(Attrs{Text: "B"}),
		newNode(Attrs{Text: "C"}),
	)

	dumps := Snapshot(root, 2)
	if len(dumps) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(dumps))
	}
	if dumps[0].Text != "R" || dumps[1].Text != "A" {
		t.Errorf("unexpected snapshot order: %q, %q", dumps[0].Text, dumps[1].Text)
	}
}

func TestSnapshot_MaxNodesClampedToOne(t *testing.T) {
	root := newNode(Attrs{Text: "R"}, newNode(Attrs{Text: "A"}))
	for _, max := range []int{0, -5} {
		dumps := Snapshot(root, max)
		if len(dumps) != 1 {
			t.Errorf("Snapshot(root, %d) returned %d nodes, want 1", max, len(dumps))
		}
	}
}

func TestSnapshot_NilRoot(t *testing.T) {
	if dumps := Snapshot(nil, 10); len(dumps) != 0 {
		t.Errorf("expected empty snapshot for nil root, got %d nodes", len(dumps))
	}
}

func TestSnapshot_SkipsUnretrievableChildren(t *testing.T) {
	a := newNode(Attrs{Text: "A"})
	b := newNode(Attrs{Text: "B"})
	root := newNode(Attrs{Text: "R"}, a, b)
	a.hidden = true

	dumps := Snapshot(root, 10)
	if len(dumps) != 2 {
		t.Fatalf("expected hidden child skipped, got %d nodes", len(dumps))
	}
	if dumps[1].Text != "B" {
		t.Errorf("expected B after skipping hidden A, got %q", dumps[1].Text)
	}
	// B keeps its positional index even though A was skipped.
	if dumps[1].Path != "r/1" {
		t.Errorf("B path = %q, want r/1", dumps[1].Path)
	}
}

func TestFindBest_TextBeatsDescription(t *testing.T) {
	byDesc := newNode(Attrs{Description: "search button"})
	byText := newNode(Attrs{Text: "search"})
	root := newNode(Attrs{}, byDesc, byText)

	best := FindBest(root, "search")
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.Text != "search" {
		t.Errorf("expected the text-matching node, got %+v", best)
	}
	if best.Path != "r/1" {
		t.Errorf("best.Path = %q, want r/1", best.Path)
	}
}

func TestFindBest_FirstSeenWinsTies(t *testing.T) {
	first := newNode(Attrs{Text: "ok"})
	second := newNode(Attrs{Text: "ok"})
	root := newNode(Attrs{}, first, second)

	best := FindBest(root, "ok")
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.Path != "r/0" {
		t.Errorf("tie broken toward %q, want first-seen r/0", best.Path)
	}
}

func TestFindBest_VisitsWholeTree(t *testing.T) {
	// A deeper node outscoring an earlier shallow one must still win.
	deep := newNode(Attrs{Text: "target"})
	mid := newNode(Attrs{}, deep)
	shallow := newNode(Attrs{Description: "target area"})
	root := newNode(Attrs{}, shallow, mid)

	best := FindBest(root, "target")
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.Path != "r/1/0" {
		t.Errorf("best.Path = %q, want the deeper text match r/1/0", best.Path)
	}
}

func TestFindBest_Deterministic(t *testing.T) {
	root := newNode(Attrs{},
		newNode(Attrs{Text: "item one"}),
		newNode(Attrs{Text: "item two"}),
		newNode(Attrs{Description: "item three"}),
	)

	first := FindBest(root, "item")
	for i := 0; i < 5; i++ {
		again := FindBest(root, "item")
		if again == nil || first == nil {
			t.Fatal("expected matches")
		}
		if again.Path != first.Path {
			t.Fatalf("call %d returned %q, first call returned %q", i, again.Path, first.Path)
		}
	}
}

func TestFindBest_NoMatch(t *testing.T) {
	root := newNode(Attrs{Text: "home"}, newNode(Attrs{Text: "settings"}))
	if best := FindBest(root, "missing"); best != nil {
		t.Errorf("expected nil for no match, got %+v", best)
	}
}

func TestFindBest_NilRootOrEmptyQuery(t *testing.T) {
	root := newNode(Attrs{Text: "home"})
	if FindBest(nil, "home") != nil {
		t.Error("expected nil for nil root")
	}
	if FindBest(root, "") != nil {
		t.Error("expected nil for empty query")
	}
}

func TestFirstMatch_AcceptsAnyMatchOverThreshold(t *testing.T) {
	// BFS order: the weak shallow match is accepted even though a stronger
	// match exists deeper. This is the editable-resolution variant.
	strong := newNode(Attrs{Text: "search"})
	holder := newNode(Attrs{}, strong)
	weak := newNode(Attrs{ViewID: "id/search"})
	root := newNode(Attrs{}, weak, holder)

	match := FirstMatch(root, "search")
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Attrs().ViewID != "id/search" {
		t.Errorf("expected first BFS match (weak), got %+v", match.Attrs())
	}
}

func TestDumpNode_BoundsAndCenter(t *testing.T) {
	n := newNode(Attrs{Text: "x", Bounds: Rect{Left: 0, Top: 100, Right: 200, Bottom: 300}})
	d := DumpNode(n, []int{2, 1})
	if d.Bounds != "[0,100][200,300]" {
		t.Errorf("Bounds = %q", d.Bounds)
	}
	if d.CenterX != 100 || d.CenterY != 200 {
		t.Errorf("center = (%d,%d), want (100,200)", d.CenterX, d.CenterY)
	}
	if d.Path != "r/2/1" {
		t.Errorf("Path = %q, want r/2/1", d.Path)
	}
}
