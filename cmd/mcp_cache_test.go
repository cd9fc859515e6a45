package cmd

import (
	"testing"
	"time"

	"github.com/tmcf/droidctl/internal/ui"
)

// countingTree counts Root calls and returns a fixed single-node tree.
type countingTree struct {
	calls int
	root  ui.Node
	err   error
}

func (t *countingTree) Root() (ui.Node, error) {
	t.calls++
	return t.root, t.err
}

func TestCachedTreeSource_CachesWithinTTL(t *testing.T) {
	src := &countingTree{root: newStubNode(ui.Attrs{Text: "home"}, nil)}
	cache := newCachedTreeSource(src, time.Minute)

	for i := 0; i < 5; i++ {
		root, err := cache.Root()
		if err != nil || root == nil {
			t.Fatalf("Root() = %v, %v", root, err)
		}
	}
	if src.calls != 1 {
		t.Errorf("source read %d times, want 1", src.calls)
	}
}

func TestCachedTreeSource_ZeroTTLDisables(t *testing.T) {
	src := &countingTree{root: newStubNode(ui.Attrs{}, nil)}
	cache := newCachedTreeSource(src, 0)

	cache.Root()
	cache.Root()
	if src.calls != 2 {
		t.Errorf("source read %d times, want 2", src.calls)
	}
}

func TestCachedTreeSource_InvalidateForcesReread(t *testing.T) {
	src := &countingTree{root: newStubNode(ui.Attrs{}, nil)}
	cache := newCachedTreeSource(src, time.Minute)

	cache.Root()
	cache.invalidate()
	cache.Root()
	if src.calls != 2 {
		t.Errorf("source read %d times, want 2", src.calls)
	}
}

func TestCachedTreeSource_DoesNotCacheUnavailable(t *testing.T) {
	src := &countingTree{}
	cache := newCachedTreeSource(src, time.Minute)

	if root, err := cache.Root(); root != nil || err != nil {
		t.Fatalf("Root() = %v, %v, want nil, nil", root, err)
	}
	cache.Root()
	if src.calls != 2 {
		t.Errorf("unavailable tree should not be cached; source read %d times, want 2", src.calls)
	}
}
