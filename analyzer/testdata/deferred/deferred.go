package deferred

import "testing"

func release(tb testing.TB) { tb.Helper() }
