package types

import (
	"sync"
	"testing"
)

func TestControlledQueue_FIFO(t *testing.T) {
	cq := NewControlledQueue[int]()
	for i := 0; i < 5; i++ {
		if !cq.Send(i) {
			t.Fatalf("Send(%d) on open queue returned false", i)
		}
	}
	for i := 0; i < 5; i++ {
		v, ok := cq.Recv()
		if !ok || v != i {
			t.Errorf("Recv() = (%d, %t), want (%d, true)", v, ok, i)
		}
	}
	if canRecv, _, _ := cq.AttemptRecv(false); canRecv {
		t.Error("queue not empty after receiving everything sent")
	}
}

func TestControlledQueue_AttemptRecvEmpty(t *testing.T) {
	cq := NewControlledQueue[string]()
	canRecv, v, ok := cq.AttemptRecv(false)
	if canRecv || v != "" || !ok {
		t.Errorf("AttemptRecv on empty = (%t, %q, %t), want (false, \"\", true)", canRecv, v, ok)
	}
}

func TestControlledQueue_Closed(t *testing.T) {
	cq := NewControlledQueue[int]()
	cq.Close()
	if cq.Send(1) {
		t.Error("Send on closed queue returned true")
	}
	if _, ok := cq.Recv(); ok {
		t.Error("Recv on closed queue returned ok")
	}
}

func TestControlledQueue_CloseWakesReceivers(t *testing.T) {
	cq := NewControlledQueue[int]()
	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		go func() {
			defer wg.Done()
			cq.Recv()
		}()
	}
	cq.Close()
	wg.Wait()
}

func TestControlledQueue_ManyReceivers(t *testing.T) {
	const items = 1000
	const receivers = 8

	cq := NewControlledQueue[int]()
	var mu sync.Mutex
	seen := make(map[int]int)
	var done sync.WaitGroup
	done.Add(items)

	var wg sync.WaitGroup
	wg.Add(receivers)
	for i := 0; i < receivers; i++ {
		go func() {
			defer wg.Done()
			for {
				v, ok := cq.Recv()
				if !ok {
					return
				}
				mu.Lock()
				seen[v]++
				mu.Unlock()
				done.Done()
			}
		}()
	}

	for i := 0; i < items; i++ {
		cq.Send(i)
	}
	done.Wait()
	cq.Close()
	wg.Wait()

	if len(seen) != items {
		t.Fatalf("received %d distinct items, want %d", len(seen), items)
	}
	for v, n := range seen {
		if n != 1 {
			t.Errorf("item %d received %d times", v, n)
		}
	}
}
