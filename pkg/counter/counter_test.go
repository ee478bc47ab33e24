package counter

import (
	"strconv"
	"testing"

	"github.com/nextcore/tally/pkg/uitest"
	"github.com/nextcore/tally/pkg/widgets"
)

// tapAndPump activates the button with the given label and runs a rebuild.
func tapAndPump(t *testing.T, tester *uitest.Tester, label string) {
	t.Helper()
	if err := tester.Tap(uitest.ByText(label)); err != nil {
		t.Fatalf("Tap(%q) error: %v", label, err)
	}
	tester.Pump()
}

// displayedCount reads the count line out of the rendered frame. The count is
// the line between the heading underline and the button row.
func displayedCount(t *testing.T, tester *uitest.Tester) string {
	t.Helper()
	lines := tester.Frame().Lines
	if len(lines) < 4 {
		t.Fatalf("frame has %d lines, want at least 4:\n%s", len(lines), tester.Frame())
	}
	return lines[2]
}

func TestCounter_InitialRender(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{})

	if !tester.Find(uitest.ByText(DefaultTitle)).Exists() {
		t.Error("expected the default title")
	}
	if got := displayedCount(t, tester); got != "0" {
		t.Errorf("initial count = %q, want %q", got, "0")
	}

	targets := tester.Frame().Targets
	want := []string{DefaultIncrementLabel, DefaultScaleLabel, DefaultResetLabel}
	if len(targets) != len(want) {
		t.Fatalf("targets = %d, want %d", len(targets), len(want))
	}
	for i, label := range want {
		if targets[i].Label != label {
			t.Errorf("target %d = %q, want %q", i, targets[i].Label, label)
		}
	}
}

func TestCounter_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		taps []string
		want string
	}{
		{"increment once", []string{"+1"}, "1"},
		{"increment three times", []string{"+1", "+1", "+1"}, "3"},
		{"scale zero stays zero", []string{"x5"}, "0"},
		{"increment then scale", []string{"+1", "x5"}, "5"},
		{"scale then increment", []string{"x5", "+1"}, "1"},
		{"reset clears accumulation", []string{"+1", "+1", "x5", "reset"}, "0"},
		{"reset is idempotent", []string{"+1", "reset", "reset"}, "0"},
		{"resume after reset", []string{"+1", "x5", "reset", "+1"}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := uitest.NewTesterWithT(t)
			tester.PumpWidget(Counter{})
			for _, label := range tt.taps {
				tapAndPump(t, tester, label)
			}
			if got := displayedCount(t, tester); got != tt.want {
				t.Errorf("after %v: count = %q, want %q", tt.taps, got, tt.want)
			}
		})
	}
}

// TestCounter_FoldEquivalence checks that any activation sequence displays
// exactly the left fold of its transitions over the initial count.
func TestCounter_FoldEquivalence(t *testing.T) {
	transitions := map[string]func(int) int{
		"+1":    func(v int) int { return v + 1 },
		"x5":    func(v int) int { return v * 5 },
		"reset": func(int) int { return 0 },
	}
	sequences := [][]string{
		{"+1", "+1", "x5", "+1", "reset", "x5", "+1"},
		{"x5", "x5", "+1", "x5", "x5"},
		{"reset", "+1", "reset", "+1", "+1", "x5"},
	}
	for _, seq := range sequences {
		tester := uitest.NewTesterWithT(t)
		tester.PumpWidget(Counter{Initial: 3})

		want := 3
		for _, label := range seq {
			tapAndPump(t, tester, label)
			want = transitions[label](want)
		}
		if got := displayedCount(t, tester); got != strconv.Itoa(want) {
			t.Errorf("after %v: count = %q, want %d", seq, got, want)
		}
	}
}

// TestCounter_TransitionsReadLiveValue activates twice before any rebuild;
// the second transition must see the first one's result, not a stale capture.
func TestCounter_TransitionsReadLiveValue(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{})

	if err := tester.Tap(uitest.ByText("+1")); err != nil {
		t.Fatalf("Tap error: %v", err)
	}
	if err := tester.Tap(uitest.ByText("+1")); err != nil {
		t.Fatalf("Tap error: %v", err)
	}
	tester.Pump()

	if got := displayedCount(t, tester); got != "2" {
		t.Errorf("count = %q, want %q (second activation saw a stale value)", got, "2")
	}
}

func TestCounter_InitialValue(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{Initial: 7})

	if got := displayedCount(t, tester); got != "7" {
		t.Errorf("count = %q, want %q", got, "7")
	}

	tapAndPump(t, tester, "x5")
	if got := displayedCount(t, tester); got != "35" {
		t.Errorf("count = %q, want %q", got, "35")
	}
}

func TestCounter_CustomTitleAndLabels(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{
		Title:  "Tally",
		Labels: Labels{Increment: "more", Scale: "lots", Reset: "zero"},
	})

	if !tester.Find(uitest.ByText("Tally")).Exists() {
		t.Error("expected the custom title")
	}
	for _, label := range []string{"more", "lots", "zero"} {
		if !tester.Find(uitest.ByText(label)).Exists() {
			t.Errorf("expected button label %q rendered verbatim", label)
		}
	}

	tapAndPump(t, tester, "more")
	tapAndPump(t, tester, "lots")
	if got := displayedCount(t, tester); got != "5" {
		t.Errorf("count = %q, want %q", got, "5")
	}
}

func TestCounter_LabelsRenderedVerbatim(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{Labels: Labels{Increment: "++"}})

	// The label text is display-only; "++" must not become "+1+1" or similar.
	if got := tester.Find(uitest.ByText("++")).Count(); got != 1 {
		t.Fatalf("ByText(++) count = %d, want 1", got)
	}

	tapAndPump(t, tester, "++")
	if got := displayedCount(t, tester); got != "1" {
		t.Errorf("count = %q, want %q: label must not affect the transition", got, "1")
	}
}

func TestCounter_PartialLabelsKeepOtherDefaults(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{Labels: Labels{Scale: "x10... kidding, x5"}})

	if !tester.Find(uitest.ByText(DefaultIncrementLabel)).Exists() {
		t.Error("expected default increment label")
	}
	if !tester.Find(uitest.ByText(DefaultResetLabel)).Exists() {
		t.Error("expected default reset label")
	}
	if !tester.Find(uitest.ByText("x10... kidding, x5")).Exists() {
		t.Error("expected the overridden scale label")
	}
}

func TestCounter_OnChangeObservesEachTransition(t *testing.T) {
	var seen []int
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{OnChange: func(count int) { seen = append(seen, count) }})

	tapAndPump(t, tester, "+1")
	tapAndPump(t, tester, "+1")
	tapAndPump(t, tester, "x5")
	tapAndPump(t, tester, "reset")

	want := []int{1, 2, 10, 0}
	if len(seen) != len(want) {
		t.Fatalf("OnChange calls = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("OnChange[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestCounter_NegativeCounts(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{Initial: -2})

	if got := displayedCount(t, tester); got != "-2" {
		t.Errorf("count = %q, want %q", got, "-2")
	}
	tapAndPump(t, tester, "x5")
	if got := displayedCount(t, tester); got != "-10" {
		t.Errorf("count = %q, want %q", got, "-10")
	}
	tapAndPump(t, tester, "reset")
	if got := displayedCount(t, tester); got != "0" {
		t.Errorf("count = %q, want %q", got, "0")
	}
}

func TestCounter_RemountStartsFresh(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{Title: "A"})
	tapAndPump(t, tester, "+1")
	tapAndPump(t, tester, "+1")

	// A new mount gets a new state record.
	tester.PumpWidget(Counter{Title: "B"})

	if !tester.Find(uitest.ByText("B")).Exists() {
		t.Error("expected the new title")
	}
	if got := displayedCount(t, tester); got != "0" {
		t.Errorf("count after remount = %q, want %q", got, "0")
	}
}

func TestCounter_ButtonsAreStateless(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	tester.PumpWidget(Counter{})
	tapAndPump(t, tester, "+1")

	// Buttons carry no state of their own: each rebuild recreates them from
	// the (callback, label) pair alone.
	buttons := tester.Find(uitest.ByType[widgets.Button]())
	if buttons.Count() != 3 {
		t.Fatalf("button count = %d, want 3", buttons.Count())
	}
	for _, el := range buttons.All() {
		b := el.Widget().(widgets.Button)
		if b.OnTap == nil {
			t.Errorf("button %q lost its callback across rebuild", b.Label)
		}
	}
}
