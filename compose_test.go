package canopy

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func baseGrid(width, height int, fill rune) *Buffer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(string(fill), width)
	}
	return NewBuffer(lines...)
}

func TestCompose_PlacesOverlay(t *testing.T) {
	base := baseGrid(6, 3, '.')
	overlay := NewBuffer("XX", "XX")
	got := Compose(base, overlay, 2, 1)

	want := []string{
		"......",
		"..XX..",
		"..XX..",
	}
	for i, line := range want {
		if got.Line(i) != line {
			t.Errorf("line %d = %q, want %q", i, got.Line(i), line)
		}
	}
}

func TestCompose_ClipsToBaseBounds(t *testing.T) {
	base := baseGrid(4, 2, '.')
	overlay := NewBuffer("XXXX", "XXXX", "XXXX")

	got := Compose(base, overlay, 2, 1)
	if got.Line(0) != "...." {
		t.Errorf("line 0 = %q", got.Line(0))
	}
	if got.Line(1) != "..XX" {
		t.Errorf("line 1 = %q", got.Line(1))
	}
	if got.Height() != 2 {
		t.Errorf("height = %d, want 2", got.Height())
	}

	// Negative anchor clips the overlay's top-left.
	got = Compose(base, NewBuffer("ABC"), -1, 0)
	if got.Line(0) != "BC.." {
		t.Errorf("negative anchor line = %q", got.Line(0))
	}
}

func TestCompose_DoesNotMutateBase(t *testing.T) {
	base := baseGrid(3, 1, '.')
	Compose(base, NewBuffer("X"), 0, 0)
	if base.Line(0) != "..." {
		t.Error("base buffer was mutated")
	}
}

func TestCompose_DisjointIsOrderIndependent(t *testing.T) {
	base := baseGrid(10, 2, '.')
	a := NewBuffer("AA", "AA")
	b := NewBuffer("BB", "BB")

	ab := Compose(Compose(base, a, 0, 0), b, 6, 0)
	ba := Compose(Compose(base, b, 6, 0), a, 0, 0)
	if ab.String() != ba.String() {
		t.Errorf("order dependent:\n%q\n%q", ab.String(), ba.String())
	}
}

func TestCompose_StyledDisjointIsOrderIndependent(t *testing.T) {
	trueColorProfile(t)
	base := baseGrid(10, 1, '.')
	styled := NewBuffer(boldRed().Render("AA"))
	plain := NewBuffer("BB")

	ab := Compose(Compose(base, styled, 0, 0), plain, 6, 0)
	ba := Compose(Compose(base, plain, 6, 0), styled, 0, 0)
	if ab.String() != ba.String() {
		t.Errorf("styled+plain order dependent:\n%q\n%q", ab.String(), ba.String())
	}

	other := NewBuffer(lipgloss.NewStyle().Background(lipgloss.Color("#112233")).Render("BB"))
	ab = Compose(Compose(base, styled, 0, 0), other, 6, 0)
	ba = Compose(Compose(base, other, 6, 0), styled, 0, 0)
	if ab.String() != ba.String() {
		t.Errorf("styled+styled order dependent:\n%q\n%q", ab.String(), ba.String())
	}
}

func TestCompose_ResetAtOverlayEdges(t *testing.T) {
	trueColorProfile(t)
	styled := lipgloss.NewStyle().Background(lipgloss.Color("#112233")).Render("XX")
	base := baseGrid(8, 1, '.')

	got := Compose(base, NewBuffer(styled), 3, 0)
	line := got.Line(0)

	// Base content on both sides of the overlay is preserved, and the
	// overlay's trailing style cannot bleed into it.
	if !strings.HasPrefix(line, "...") {
		t.Errorf("prefix lost: %q", line)
	}
	if !strings.HasSuffix(line, "..") {
		t.Errorf("suffix lost: %q", line)
	}
	after := line[strings.LastIndex(line, "X")+1:]
	if !strings.HasPrefix(after, "\x1b[0m") && !strings.HasPrefix(after, "\x1b[") {
		t.Errorf("expected reset between overlay and suffix: %q", line)
	}
	if got.Width() != 8 {
		t.Errorf("width = %d, want 8", got.Width())
	}
}

func TestCompose_ShortOverlayLinesCoverRectangle(t *testing.T) {
	base := baseGrid(6, 2, '.')
	overlay := NewBuffer("XXX", "X")
	got := Compose(base, overlay, 1, 0)
	if got.Line(1) != ".X  .." {
		t.Errorf("line 1 = %q, want %q", got.Line(1), ".X  ..")
	}
}

func TestCompose_EmptyOverlayIsIdentity(t *testing.T) {
	base := baseGrid(3, 1, '.')
	if got := Compose(base, EmptyBuffer(), 1, 0); got.String() != base.String() {
		t.Errorf("got %q", got.String())
	}
}
