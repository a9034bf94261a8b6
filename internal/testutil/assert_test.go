package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

func TestAssertHelpers_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "hello", "hello", "value should be %s", "hello")
	AssertNoError(t, nil)
	RequireNoError(t, nil, "setup")
	AssertContains(t, "hello world", "world")
	AssertTrue(t, true)
	AssertFalse(t, false)

	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"format", []interface{}{"depth %d", 3}, "depth 3"},
		{"non string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestDestinationsAndUCIs(t *testing.T) {
	e2 := Sq(t, "e2")
	actions := []chess.Action{
		chess.NewMove(e2, Sq(t, "e4"), chess.Pawn),
		chess.NewMove(e2, Sq(t, "e3"), chess.Pawn),
		chess.NewMove(Sq(t, "g1"), Sq(t, "f3"), chess.Knight),
	}
	AssertEqual(t, Destinations(actions, e2), []string{"e3", "e4"})
	AssertEqual(t, UCIs(actions), []string{"e2e3", "e2e4", "g1f3"})
}

func TestAssertSameState(t *testing.T) {
	b := chess.NewBoard()
	AssertSameState(t, b.Snapshot(), b.Clone().Snapshot())
}
