/* want `Expected cleanup function name, call expression or function literal, got "cleanup now" \(at:spc\)` */ //aftertest:cleanup cleanup now

package grammar

import "testing"

func TestUnchanged(t *testing.T) {
	t.Log("no valid directive, nothing to add")
}
