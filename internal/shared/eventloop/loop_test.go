package eventloop

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
)

func TestLoop_RunsInOrderAndSurvivesPanics(t *testing.T) {
	l := New(16)
	go l.Run(context.Background())

	var (
		mu  sync.Mutex
		got []int
	)
	record := func(i int) Task {
		return func(context.Context) {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if i == 2 {
			if err := l.Submit(ctx, "boom", func(context.Context) { panic("boom") }); err != nil {
				t.Fatal(err)
			}
		}
		if err := l.Submit(ctx, "record", record(i)); err != nil {
			t.Fatal(err)
		}
	}
	l.Close()

	if len(got) != 5 {
		t.Fatalf("Ran %d tasks, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("Out of order: %v", got)
		}
	}
}

func TestLoop_SubmitAfterClose(t *testing.T) {
	l := New(1)
	go l.Run(context.Background())
	l.Close()

	err := l.Submit(context.Background(), "late", func(context.Context) {})
	if !stderrors.Is(err, errors.ErrQueueClosed) {
		t.Errorf("Submit after Close = %v, want ErrQueueClosed", err)
	}
}

func TestLoop_CloseWithoutRun(t *testing.T) {
	l := New(1)
	l.Close()
	l.Close()
}
