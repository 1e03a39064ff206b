package gacha

import (
	"sync"
	"testing"
	"time"
)

func TestUserLocks_SerializesSameUser(t *testing.T) {
	locks := NewUserLocks()

	const goroutines = 50
	var counter int
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter = %d, want %d", counter, goroutines)
	}
}

func TestUserLocks_ReusesMutexPerUser(t *testing.T) {
	locks := NewUserLocks()

	unlock := locks.Lock("user-1")
	done := make(chan struct{})
	go func() {
		inner := locks.Lock("user-1")
		inner()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("second Lock for the same user acquired while the first was held")
	default:
	}

	unlock()
	<-done
}
