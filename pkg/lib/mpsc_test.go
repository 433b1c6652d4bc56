package lib

import (
	"sync"
	"testing"
	"time"
)

func TestMpscFIFO(t *testing.T) {
	q := NewMpsc[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for i := 0; i < 10; i++ {
		v, ok := q.Pop()
		if !ok || v != i {
			t.Fatalf("pop %d = (%d, %v)", i, v, ok)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop on empty queue succeeded")
	}
	if !q.Empty() {
		t.Fatal("queue not empty")
	}
}

type item struct {
	producer int
	seq      int
}

// TestMpscConcurrent 并发 Push 不丢元素，且同一生产者的元素保持入队顺序
func TestMpscConcurrent(t *testing.T) {
	const (
		producers = 8
		perEach   = 1000
	)
	q := NewMpsc[item]()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perEach; i++ {
				q.Push(item{producer: p, seq: i})
			}
		}(p)
	}

	lastSeq := make([]int, producers)
	for i := range lastSeq {
		lastSeq[i] = -1
	}
	total := 0
	deadline := time.Now().Add(5 * time.Second)
	for total < producers*perEach {
		v, ok := q.Pop()
		if !ok {
			if time.Now().After(deadline) {
				t.Fatalf("drained %d of %d", total, producers*perEach)
			}
			time.Sleep(time.Millisecond)
			continue
		}
		if v.seq != lastSeq[v.producer]+1 {
			t.Fatalf("producer %d order broken: %d after %d", v.producer, v.seq, lastSeq[v.producer])
		}
		lastSeq[v.producer] = v.seq
		total++
	}
	wg.Wait()
	if !q.Empty() {
		t.Fatal("queue not empty after drain")
	}
}
