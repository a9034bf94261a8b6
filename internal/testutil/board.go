package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

// Sq parses a square name, failing the test on bad input.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square in test: %v", err)
	}
	return sq
}

// Destinations returns the sorted target squares of the actions leaving from.
func Destinations(actions []chess.Action, from chess.Square) []string {
	var out []string
	for _, a := range actions {
		if a.Start() == from {
			out = append(out, a.Target().String())
		}
	}
	sort.Strings(out)
	return out
}

// UCIs returns the sorted long algebraic forms of the actions, nil if none.
func UCIs(actions []chess.Action) []string {
	var out []string
	for _, a := range actions {
		out = append(out, a.UCI())
	}
	sort.Strings(out)
	return out
}

// AssertSameState fails when two snapshots differ, printing the cells that changed.
func AssertSameState(t testing.TB, got, want chess.Snapshot, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%sboard state mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}
