// Package dedupe collapses concurrent identical loads into one backend call.
package dedupe

import (
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/ericogr/duel-arena/internal/game"
)

// BattleLoads deduplicates battle document loads keyed by room. The zero value
// is ready to use. Each store owns its own so two stores never share a result.
type BattleLoads struct {
	g singleflight.Group
}

// Do runs fn once for all callers loading roomID at the same time and hands
// every caller the same result.
func (l *BattleLoads) Do(roomID int64, fn func() (*game.Battle, error)) (*game.Battle, error) {
	v, err, _ := l.g.Do(RoomKey(roomID), func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Battle), nil
}

// RoomKey is the BattleLoads key for a room.
func RoomKey(roomID int64) string {
	return "room:" + strconv.FormatInt(roomID, 10)
}
