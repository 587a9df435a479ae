package textutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		cell     string
		expected []string
	}{
		{"A, B,B", []string{"A", "B", "B"}},
		{" Waste , Recycling ", []string{"Waste", "Recycling"}},
		{",,", nil},
		{"", nil},
		{"Construction", []string{"Construction"}},
	}

	for _, test := range testCases {
		diff := cmp.Diff(test.expected, SplitTags(test.cell))
		if diff != "" {
			t.Fatalf("SplitTags(%q) mismatch (-want +got):\n%s", test.cell, diff)
		}
	}
}

func TestJoinTags(t *testing.T) {
	joined := JoinTags([]string{"Waste", "Recycling"})
	if joined != "Waste, Recycling" {
		t.Fatalf("unexpected join result: %q", joined)
	}
	if JoinTags(nil) != "" {
		t.Fatal("joining no tags should produce an empty cell")
	}
}
