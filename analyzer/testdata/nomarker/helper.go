//aftertest:cleanup cleanup

package nomarker // want `Cleanup directive in helper\.go, which is not a test file \(at:mrk\)`

import "testing"

func cleanup() {}

func TestInHelper(t *testing.T) { // want `Test function TestInHelper should end with cleanup\(\) \(at:cln\)`
	t.Log("helper")
}
