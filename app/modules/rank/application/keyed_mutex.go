package rankservice

import (
	"sync"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// keyedMutex serializes assignment writes per (guild, player) pair without
// blocking unrelated pairs. Entries are reference counted and removed once
// the last holder unlocks, so the map does not grow with the player base.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*lockEntry)}
}

func assignmentKey(guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID) string {
	return string(guildID) + "/" + string(discordID)
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
