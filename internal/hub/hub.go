// Package hub fans rendered round reports out to the room feed subscribers.
package hub

import "sync"

// subscriberBuffer bounds each subscriber channel. A slow reader drops
// reports instead of stalling the publisher.
const subscriberBuffer = 16

// Report is one resolved round as pushed to a room feed.
type Report struct {
	RoomID int64  `json:"room_id"`
	Round  int    `json:"round"`
	Text   string `json:"report"`
	Over   bool   `json:"is_over"`
	Winner string `json:"winner,omitempty"`
}

// Broadcaster keeps per-room subscriber channels.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID uint64
	rooms  map[int64]map[uint64]chan Report
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{rooms: make(map[int64]map[uint64]chan Report)}
}

// Subscribe registers a new feed listener for the room. The returned cancel
// func unregisters it and closes the channel; it is safe to call twice.
func (b *Broadcaster) Subscribe(roomID int64) (<-chan Report, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan Report, subscriberBuffer)
	subs, ok := b.rooms[roomID]
	if !ok {
		subs = make(map[uint64]chan Report)
		b.rooms[roomID] = subs
	}
	subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(roomID, id) })
	}
}

func (b *Broadcaster) unsubscribe(roomID int64, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.rooms[roomID]
	if !ok {
		return
	}
	if ch, ok := subs[id]; ok {
		close(ch)
		delete(subs, id)
	}
	if len(subs) == 0 {
		delete(b.rooms, roomID)
	}
}

// Publish delivers the report to every subscriber of its room without blocking.
func (b *Broadcaster) Publish(r Report) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.rooms[r.RoomID] {
		select {
		case ch <- r:
		default:
		}
	}
}

// SubscriberCount returns the number of listeners on a room.
func (b *Broadcaster) SubscriberCount(roomID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.rooms[roomID])
}
