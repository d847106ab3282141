package pipeline_test

import (
	"context"
	"testing"
	"time"
)

func produceInts(total int) func(ctx context.Context, rootChan chan<- int) error {
	return func(ctx context.Context, rootChan chan<- int) error {
		for i := range total {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- i:
			}
		}

		return nil
	}
}

// recorder collects the elements reaching a sink. Only the sink goroutine appends to it.
type recorder struct {
	got []int
}

func (r *recorder) sink(_ context.Context, in int) error {
	r.got = append(r.got, in)

	return nil
}

func expectedInts(t *testing.T, total int) []int {
	t.Helper()

	res := make([]int, total)
	for i := range res {
		res[i] = i
	}

	return res
}

func waitOrFail(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal(msg)
	}
}
