package gacha

import "sync"

// UserLocks serializes gacha actions per user so two concurrent requests
// by the same user cannot both pass a cooldown or balance check before
// either commits. Different users never contend with each other.
type UserLocks struct {
	locks sync.Map // userID -> *sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

// Lock acquires the mutex for userID, creating it on first use, and
// returns the unlock function. Mutexes are kept for the lifetime of the
// process; the per-user footprint is a single mutex.
func (l *UserLocks) Lock(userID string) func() {
	mu, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
