package ingredientlibrary

import (
	"hash/fnv"
	"sync"
)

// keyLockTable serializes Welford updates per (owner_id, normalized_name)
// in-process, per spec.md §9's in-process-mutex strategy. It is sharded by
// hash so unrelated keys never contend on the same mutex, matching the
// repository layer's existing sync.RWMutex idiom
// (see internal/infrastructure/repository/memory).
type keyLockTable struct {
	shards [keyLockShardCount]sync.Mutex
}

const keyLockShardCount = 64

func newKeyLockTable() *keyLockTable {
	return &keyLockTable{}
}

// Lock acquires the mutex for (ownerID, normalizedName) and returns an
// unlock function.
func (t *keyLockTable) Lock(ownerID, normalizedName string) func() {
	shard := &t.shards[shardIndex(ownerID, normalizedName)]
	shard.Lock()
	return shard.Unlock
}

func shardIndex(ownerID, normalizedName string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(normalizedName))
	return h.Sum32() % keyLockShardCount
}
