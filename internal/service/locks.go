package service

import "sync"

// RoomLocks hands out one mutex per room, created on first use. Distinct
// rooms never contend.
type RoomLocks struct {
	m sync.Map // int64 -> *sync.Mutex
}

// Lock acquires the room mutex and returns its release func.
func (l *RoomLocks) Lock(roomID int64) func() {
	v, _ := l.m.LoadOrStore(roomID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
