// Package uitest provides a widget testing framework for Tally.
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Simulate activations
//	    tester.Tap(uitest.ByText("Submit"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(uitest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// Frame assertions compare rendered text lines:
//
//	frame := tester.Frame()
//	if frame.Lines[0] != "Tally" {
//	    t.Errorf("unexpected heading: %q", frame.Lines[0])
//	}
package uitest
