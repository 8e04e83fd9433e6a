package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecuteAllPreservesOrder(t *testing.T) {
	ids := []string{"30", "10", "20", "0"}

	results := ExecuteAll(context.Background(), ids, 0, func(ctx context.Context, id string) (string, error) {
		var ms int
		fmt.Sscanf(id, "%d", &ms)
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return "v" + id, nil
	})

	if len(results) != len(ids) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(ids))
	}
	for i, r := range results {
		if r.ID != ids[i] || r.Value != "v"+ids[i] || r.Err != nil {
			t.Errorf("results[%d] = %+v", i, r)
		}
	}
}

func TestExecuteAllKeepsGoingAfterError(t *testing.T) {
	boom := errors.New("boom")
	ids := []string{"ok1", "bad", "ok2"}

	results := ExecuteAll(context.Background(), ids, 1, func(ctx context.Context, id string) (int, error) {
		if id == "bad" {
			return 0, boom
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return len(id), nil
	})

	if !errors.Is(results[1].Err, boom) {
		t.Errorf("results[1].Err = %v, want boom", results[1].Err)
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("other ids should succeed: %+v", results)
	}
	if results[2].Value != 3 {
		t.Errorf("results[2].Value = %d, want 3", results[2].Value)
	}
}

func TestExecuteAllRespectsLimit(t *testing.T) {
	var inFlight, peak int32
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprint(i)
	}

	ExecuteAll(context.Background(), ids, 3, func(ctx context.Context, id string) (struct{}, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return struct{}{}, nil
	})

	if p := atomic.LoadInt32(&peak); p > 3 || p == 0 {
		t.Errorf("peak concurrency = %d, want 1..3", p)
	}
}
