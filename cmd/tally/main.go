// Command tally runs the counter demo on a line-based text surface.
//
// Each rendered frame is printed to stdout. Type a target number (1-based)
// or a button label to activate it, or q to quit. An optional tally.yaml in
// the project root overrides the title and button labels.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nextcore/tally/cmd/tally/internal/config"
	"github.com/nextcore/tally/pkg/app"
	"github.com/nextcore/tally/pkg/counter"
	"github.com/nextcore/tally/pkg/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tally: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.FindProjectRoot()
	if err != nil {
		dir = "."
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	a := app.New(counter.Counter{
		Title: resolved.Title,
		Labels: counter.Labels{
			Increment: resolved.Labels.Increment,
			Scale:     resolved.Labels.Scale,
			Reset:     resolved.Labels.Reset,
		},
	}, app.WithFrameSink(printFrame))

	go readInput(a)

	return a.Run(context.Background())
}

// printFrame writes each frame and an activation hint to stdout.
// Runs on the loop goroutine.
func printFrame(f render.Frame) {
	fmt.Println()
	fmt.Println(f.String())
	if len(f.Targets) > 0 {
		hints := make([]string, len(f.Targets))
		for i, target := range f.Targets {
			hints[i] = fmt.Sprintf("%d=%s", i+1, target.Label)
		}
		fmt.Printf("(%s, q=quit) ", strings.Join(hints, " "))
	}
}

// readInput translates stdin lines into activations until EOF or q.
func readInput(a *app.App) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "q" || line == "quit":
			a.Stop()
			return
		default:
			if n, err := strconv.Atoi(line); err == nil {
				a.Activate(n - 1)
			} else {
				a.ActivateLabel(line)
			}
		}
	}
	a.Stop()
}
