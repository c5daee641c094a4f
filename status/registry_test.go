package status

import (
	"sync"
	"testing"
)

func TestCounterIncrement(t *testing.T) {
	r := NewRegistry()
	r.Inc(KeyCommitted)
	r.Inc(KeyCommitted)
	r.Inc(KeyDiscardNoop)

	if got := r.Get(KeyCommitted); got != 2 {
		t.Errorf("Expected committed count 2, got %d", got)
	}
	if got := r.Get(KeyDiscardNoop); got != 1 {
		t.Errorf("Expected noop count 1, got %d", got)
	}
	if got := r.Get(KeyDiscardLocked); got != 0 {
		t.Errorf("Expected untouched counter to read 0, got %d", got)
	}
}

func TestCounterSameInstance(t *testing.T) {
	r := NewRegistry()
	a := r.Counter(KeyRequestsSeen)
	b := r.Counter(KeyRequestsSeen)
	if a != b {
		t.Error("Expected repeated Counter calls to return the same counter")
	}
	a.Add(5)
	if got := r.Get(KeyRequestsSeen); got != 5 {
		t.Errorf("Expected 5 via registry read, got %d", got)
	}
}

func TestRangeSortedKeys(t *testing.T) {
	r := NewRegistry()
	r.Inc("c.metric")
	r.Inc("a.metric")
	r.Inc("b.metric")

	var keys []string
	r.Range(func(key string, value int64) {
		keys = append(keys, key)
	})

	want := []string{"a.metric", "b.metric", "c.metric"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected sorted keys %v, got %v", want, keys)
			break
		}
	}
	if r.Count() != 3 {
		t.Errorf("Expected 3 counters, got %d", r.Count())
	}
}

func TestConcurrentIncrement(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	const workers = 16
	const each = 100

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j++ {
				r.Inc(KeyRequestsSeen)
			}
		}()
	}
	wg.Wait()

	if got := r.Get(KeyRequestsSeen); got != workers*each {
		t.Errorf("Expected %d after concurrent increments, got %d", workers*each, got)
	}
}
