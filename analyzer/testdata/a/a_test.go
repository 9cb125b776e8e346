//aftertest:cleanup cleanup

package a

import "testing"

func TestFirst(t *testing.T) { // want `Test function TestFirst should end with cleanup\(\) \(at:cln\)`
	x := 1
	_ = x
}

func TestEmpty(t *testing.T) {} // want `Test function TestEmpty should end with cleanup\(\) \(at:cln\)`

// TestDone already cleans up.
func TestDone(t *testing.T) {
	cleanup()
}

// TestOptOut manages its own resources.
//
//nolint:aftertest
func TestOptOut(t *testing.T) {
	t.Log("no cleanup")
}

func BenchmarkSkipped(b *testing.B) {
	b.ReportAllocs()
}

func TestMain(m *testing.M) {
	m.Run()
}

func helper(t *testing.T) {
	t.Helper()
}
