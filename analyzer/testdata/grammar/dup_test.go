//aftertest:cleanup cleanup

/* want `Duplicate cleanup directive, only the first one is used \(at:dup\)` */ //aftertest:cleanup other

package grammar

import "testing"

func TestDuplicate(t *testing.T) {
	cleanup()
}
