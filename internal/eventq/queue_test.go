package eventq

import (
	"sync"
	"testing"
)

func TestPushDrainOrder(t *testing.T) {
	q := New[int]()
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	got := q.Drain()
	if len(got) != 100 {
		t.Fatalf("expected 100 elements, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("element %d: expected %d got %d", i, i, v)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after drain: len=%d", q.Len())
	}
}

func TestDrainEmpty(t *testing.T) {
	q := New[string]()
	if got := q.Drain(); got != nil {
		t.Fatalf("expected nil from empty drain, got %v", got)
	}
}

func TestInterleavedDrains(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	first := q.Drain()
	q.Push(3)
	second := q.Drain()
	if len(first) != 2 || first[0] != 1 || first[1] != 2 {
		t.Fatalf("first drain: %v", first)
	}
	if len(second) != 1 || second[0] != 3 {
		t.Fatalf("second drain: %v", second)
	}
}

// Concurrent producers each push an increasing sequence. Across any number
// of drains the total must be exact (no loss, no duplication) and each
// producer's subsequence must stay in order.
func TestConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 500

	type tagged struct{ producer, seq int }
	q := New[tagged]()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(tagged{producer: p, seq: i})
			}
		}(p)
	}

	// Drain concurrently with the producers; collect everything.
	var all []tagged
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		all = append(all, q.Drain()...)
		select {
		case <-done:
			all = append(all, q.Drain()...)
			goto verify
		default:
		}
	}

verify:
	if len(all) != producers*perProducer {
		t.Fatalf("expected %d elements, got %d", producers*perProducer, len(all))
	}
	next := make([]int, producers)
	for i, v := range all {
		if v.seq != next[v.producer] {
			t.Fatalf("element %d: producer %d out of order: expected seq %d got %d",
				i, v.producer, next[v.producer], v.seq)
		}
		next[v.producer]++
	}
	for p, n := range next {
		if n != perProducer {
			t.Fatalf("producer %d: expected %d elements, got %d", p, perProducer, n)
		}
	}
}
