package main

import "testing"

func TestComponentSummary(t *testing.T) {
	for _, v := range []struct {
		components, valid, dropped int
		want                       string
	}{
		{2, 5, 0, "Found 2 connected component(s) among 5 of 5 input rectangle(s)"},
		{1, 3, 2, "Found 1 connected component(s) among 3 of 5 input rectangle(s)"},
		{0, 0, 4, "Found 0 connected component(s) among 0 of 4 input rectangle(s)"},
	} {
		if got := componentSummary(v.components, v.valid, v.dropped); got != v.want {
			t.Fatalf("componentSummary(%d, %d, %d) = %q, want %q", v.components, v.valid, v.dropped, got, v.want)
		}
	}
}
