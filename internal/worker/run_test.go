package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

func rootItems(n int) []WorkItem {
	items := make([]WorkItem, n)
	for i := range items {
		items[i] = WorkItem{
			Board:  chess.NewBoard(),
			Action: chess.NewMove(chess.ToMailbox[i], chess.ToMailbox[i+8], chess.Queen),
			Depth:  2,
		}
	}
	return items
}

func TestRunOrdersResults(t *testing.T) {
	items := rootItems(12)
	process := func(item WorkItem) ProcessResult {
		if item.Index%3 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index, Action: item.Action, Nodes: uint64(item.Index * 10)}
	}

	results, err := Run(context.Background(), items, process, WithWorkers(4))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("len(results) = %d; want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Index != i || r.Nodes != uint64(i*10) {
			t.Errorf("results[%d] = {Index: %d, Nodes: %d}", i, r.Index, r.Nodes)
		}
		if r.Action.From != items[i].Action.From {
			t.Errorf("results[%d] action from %s; want %s", i, r.Action.From, items[i].Action.From)
		}
	}
}

func TestRunStopsOnError(t *testing.T) {
	errBoom := errors.New("boom")
	var processed int32
	process := func(item WorkItem) ProcessResult {
		atomic.AddInt32(&processed, 1)
		if item.Index == 0 {
			return ProcessResult{Index: item.Index, Err: errBoom}
		}
		time.Sleep(time.Millisecond)
		return ProcessResult{Index: item.Index, Nodes: 1}
	}

	results, err := Run(context.Background(), rootItems(40), process, WithWorkers(1), WithBufferSize(1))
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() error = %v; want %v", err, errBoom)
	}
	if results != nil {
		t.Error("Run() should not return partial results on error")
	}
	if got := atomic.LoadInt32(&processed); got >= 40 {
		t.Logf("error did not prevent any processing: %d processed", got)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	process := func(item WorkItem) ProcessResult {
		if item.Index == 1 {
			cancel()
		}
		time.Sleep(time.Millisecond)
		return ProcessResult{Index: item.Index}
	}

	_, err := Run(ctx, rootItems(20), process, WithWorkers(2))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v; want context.Canceled", err)
	}
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), nil, func(item WorkItem) ProcessResult {
		t.Error("process called without items")
		return ProcessResult{}
	})
	if err != nil || len(results) != 0 {
		t.Errorf("Run(nil) = %v, %v; want empty, nil", results, err)
	}
}
