package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	KeyThreadBloom = "bloom:thread:ids"

	defaultHashes = 3
)

// redisBloomRepo keeps a bloom filter of thread ids in one redis bitmap.
//
// With m bits, k hashes and n ids the false positive rate is about
// (1 - e^(-k*n/m))^k. The defaults (m = 10,000,000, k = 3) give roughly
// 0.003% at 100k threads and 1.7% at 1M threads. A false positive only costs
// a store lookup.
type redisBloomRepo struct {
	client  *redis.Client
	bitSize uint64
	hashes  uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize, hashes uint64) *redisBloomRepo {
	if hashes == 0 {
		hashes = defaultHashes
	}
	return &redisBloomRepo{
		client:  client,
		bitSize: bitSize,
		hashes:  hashes,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	r.setBits(ctx, pipe, id)
	_, err := pipe.Exec(ctx)
	return err
}

// Exists answers "maybe" when the bitmap key is gone, since an empty filter
// says nothing about the store.
func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	pipe := r.client.Pipeline()
	keyCmd := pipe.Exists(ctx, KeyThreadBloom)
	bitCmds := make([]*redis.IntCmd, 0, r.hashes)
	for _, offset := range r.offsets(id) {
		bitCmds = append(bitCmds, pipe.GetBit(ctx, KeyThreadBloom, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if keyCmd.Val() == 0 {
		return true, nil
	}
	for _, cmd := range bitCmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		r.setBits(ctx, pipe, id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) setBits(ctx context.Context, pipe redis.Pipeliner, id string) {
	for _, offset := range r.offsets(id) {
		pipe.SetBit(ctx, KeyThreadBloom, int64(offset), 1)
	}
}

// offsets derives k bit positions by double hashing: h1 + i*h2 mod m.
// h2 is forced odd so the positions don't collapse when h2 is 0.
func (r *redisBloomRepo) offsets(id string) []uint64 {
	data := []byte(id)

	h := fnv.New64a()
	h.Write(data)
	h1 := h.Sum64()
	h2 := uint64(crc32.ChecksumIEEE(data)) | 1

	offsets := make([]uint64, r.hashes)
	for i := range offsets {
		offsets[i] = (h1 + uint64(i)*h2) % r.bitSize
	}
	return offsets
}
