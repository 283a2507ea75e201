package canopy

import "github.com/charmbracelet/lipgloss"

// HorizontalAlignment positions content along the horizontal axis.
type HorizontalAlignment int

const (
	AlignLeading HorizontalAlignment = iota
	AlignCenter
	AlignTrailing
)

// VerticalAlignment positions content along the vertical axis.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// Alignment is a two-axis placement.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// Centered is the common center/middle alignment.
var Centered = Alignment{Horizontal: AlignCenter, Vertical: AlignMiddle}

// position maps to lipgloss placement positions.
func (a HorizontalAlignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignTrailing:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func (a VerticalAlignment) position() lipgloss.Position {
	switch a {
	case AlignMiddle:
		return lipgloss.Center
	case AlignBottom:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// Insets are four-sided integer margins. Negative values are treated as 0.
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformInsets returns equal insets on all four edges.
func UniformInsets(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// clamped returns the insets with negative edges zeroed.
func (in Insets) clamped() Insets {
	return Insets{
		Top:    max(in.Top, 0),
		Right:  max(in.Right, 0),
		Bottom: max(in.Bottom, 0),
		Left:   max(in.Left, 0),
	}
}

// constraintKind discriminates Constraint variants.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintFixed
	constraintFill
)

// Constraint is a per-axis size request: unconstrained (the zero value),
// fixed at n cells, or fill the available space.
type Constraint struct {
	kind constraintKind
	n    int
}

// Fixed requests exactly n cells, capped by the available space.
func Fixed(n int) Constraint {
	return Constraint{kind: constraintFixed, n: n}
}

// Fill requests all available space on the axis.
func Fill() Constraint {
	return Constraint{kind: constraintFill}
}

// available returns the space offered to the child on the axis: a fixed
// constraint narrows it, otherwise the full space passes through.
func (c Constraint) available(space int) int {
	if c.kind == constraintFixed {
		return min(c.n, space)
	}
	return space
}

// resolve returns the target size for the axis given the available space and
// the content's intrinsic size, clamped up to min and never negative.
func (c Constraint) resolve(available, content, minimum int) int {
	var target int
	switch c.kind {
	case constraintFill:
		target = available
	case constraintFixed:
		target = min(c.n, available)
	default:
		// Available space is an upper bound only.
		target = min(content, available)
	}
	target = max(target, minimum)
	return max(target, 0)
}
