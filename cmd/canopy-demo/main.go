package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"canopy"
)

// demoRoot builds a small tree exercising boxes, half-block panels, focus
// sections, scrolling, and a modal.
type demoRoot struct {
	status    string
	showModal bool
}

func (d *demoRoot) view() canopy.View {
	pal := canopy.DetectPalette()

	menu := canopy.InSection{
		ID:       "main",
		Activate: !d.showModal,
		Child: canopy.VStack{Children: []canopy.View{
			canopy.Interactive{
				ID:         "greet",
				OnActivate: func() { d.status = "hello from canopy" },
				Child:      canopy.Label("Say hello"),
			},
			canopy.Interactive{
				ID:         "modal",
				OnActivate: func() { d.showModal = true },
				Child:      canopy.Label("Open modal"),
			},
			canopy.Interactive{
				ID:       "disabled",
				Disabled: true,
				Child:    canopy.Styled{Style: pal.MutedStyle(), Child: canopy.Label("Unavailable")},
			},
		}},
	}

	logLines := make([]string, 40)
	for i := range logLines {
		logLines[i] = fmt.Sprintf("log entry %02d", i+1)
	}
	logPane := canopy.Frame{
		Height: canopy.Fixed(8),
		Child:  canopy.Scroll{Child: canopy.Label(strings.Join(logLines, "\n"))},
	}

	base := canopy.VStack{
		Gap: 1,
		Children: []canopy.View{
			canopy.Box{
				Title: "canopy demo",
				Child: canopy.Padded(menu, 1),
				Footer: canopy.ChangeHighlight{
					Value: d.status,
					Style: pal.AccentStyle(),
					Child: canopy.Label(d.status),
				},
				FooterDivider: true,
			},
			canopy.BlockBox{
				Title:  "Activity",
				Body:   logPane,
				Footer: canopy.Label("ctrl+u/ctrl+d to scroll"),
			},
			canopy.Rule{},
			canopy.HStack{
				Justify: true,
				Children: []canopy.View{
					canopy.Label("tab: next"),
					canopy.Label("enter: activate"),
					canopy.Label("ctrl+c: quit"),
				},
			},
		},
	}

	if !d.showModal {
		return base
	}
	return canopy.Modal{
		Base:      base,
		SectionID: "demo-modal",
		Dismiss:   func() { d.showModal = false },
		Content: canopy.Box{
			Title: "About",
			Child: canopy.Padded(canopy.VStack{Children: []canopy.View{
				canopy.Label("A declarative terminal UI demo."),
				canopy.Spacer{Height: 1},
				canopy.Interactive{
					ID:         "close",
					OnActivate: func() { d.showModal = false },
					Child:      canopy.Label("[ Close ]"),
				},
			}}, 1),
		},
	}
}

// root adapts demoRoot to the render contract: a composite that rebuilds
// its body from current demo state every pass.
type root struct{ demo *demoRoot }

func (r root) Body(canopy.Context) canopy.View {
	return r.demo.view()
}

func main() {
	demo := &demoRoot{status: "ready"}

	opts := []canopy.Option{
		canopy.WithPalette(canopy.DetectPalette()),
		canopy.WithInitialSection("main"),
	}
	if tp, err := canopy.NewOTLPTracerProvider(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
		os.Exit(1)
	} else if tp != nil {
		defer tp.Shutdown(context.Background())
		opts = append(opts, canopy.WithTracerProvider(tp))
	}

	if err := canopy.NewProgram(root{demo: demo}, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
