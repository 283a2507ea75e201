package canopy

import (
	"fmt"
	"strings"
	"testing"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d", i)
	}
	return strings.Join(lines, "\n")
}

func TestScroll_ShortContentPassesThrough(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 10)
	b := Render(Scroll{Child: Text{Content: numberedLines(3)}}, ctx)
	if b.Height() != 3 {
		t.Errorf("height = %d, want 3", b.Height())
	}
	if _, ok := ctx.State.Get("root/scrollOffset"); ok {
		t.Error("short content should not persist an offset")
	}
	if ctx.Keys.Len() != 0 {
		t.Error("short content should not bind scroll keys")
	}
}

func TestScroll_WindowsTallContent(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 4)
	b := Render(Scroll{Child: Text{Content: numberedLines(10)}}, ctx)
	if b.Height() != 4 {
		t.Fatalf("height = %d, want 4", b.Height())
	}
	if b.Line(0) != "l0" || b.Line(3) != "l3" {
		t.Errorf("window = %q", b.Lines())
	}
}

func TestScroll_OffsetPersists(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 4)
	ctx.State.Set("root/scrollOffset", 2)
	b := Render(Scroll{Child: Text{Content: numberedLines(10)}}, ctx)
	if b.Line(0) != "l2" || b.Line(3) != "l5" {
		t.Errorf("window = %q", b.Lines())
	}
}

func TestScroll_ClampsStaleOffset(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 4)
	ctx.State.Set("root/scrollOffset", 99)
	b := Render(Scroll{Child: Text{Content: numberedLines(10)}}, ctx)
	if b.Line(0) != "l6" || b.Line(3) != "l9" {
		t.Errorf("window = %q", b.Lines())
	}
	if ctx.State.Int("root/scrollOffset", -1) != 6 {
		t.Errorf("persisted offset = %d, want clamped 6", ctx.State.Int("root/scrollOffset", -1))
	}
}

func TestScroll_KeysAdjustOffset(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 4)
	view := Scroll{Child: Text{Content: numberedLines(10)}}

	render := func() *Buffer {
		ctx.Keys.Reset()
		return Render(view, ctx)
	}

	render()
	if !ctx.Keys.Dispatch(keyMsg("ctrl+d")) {
		t.Fatal("scroll-down key not handled")
	}
	if b := render(); b.Line(0) != "l1" {
		t.Errorf("after line down: %q", b.Line(0))
	}

	ctx.Keys.Dispatch(keyMsg("pgdown"))
	if b := render(); b.Line(0) != "l5" {
		t.Errorf("after page down: %q", b.Line(0))
	}

	// Down at the bottom clamps.
	ctx.State.Set("root/scrollOffset", 6)
	render()
	ctx.Keys.Dispatch(keyMsg("ctrl+d"))
	if ctx.State.Int("root/scrollOffset", -1) != 6 {
		t.Error("offset moved past the end")
	}

	ctx.Keys.Dispatch(keyMsg("ctrl+u"))
	if b := render(); b.Line(0) != "l5" {
		t.Errorf("after line up: %q", b.Line(0))
	}
}

func TestScroll_MeasuringLeavesStateAlone(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 4)
	view := Scroll{Child: Text{Content: numberedLines(10)}}

	Measure(view, ctx)
	if _, ok := ctx.State.Get("root/scrollOffset"); ok {
		t.Error("measuring pass wrote the offset")
	}
	if ctx.Keys.Len() != 0 {
		t.Error("measuring pass bound scroll keys")
	}
}

func TestScroll_ZeroHeightPassesThrough(t *testing.T) {
	asciiProfile(t)
	ctx := testContext(20, 0)
	b := Render(Scroll{Child: Text{Content: numberedLines(5)}}, ctx)
	if b.Height() != 5 {
		t.Errorf("height = %d, want full content", b.Height())
	}
}
