package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Password = "secret"
	cfg.DB = 3

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}

func TestConfig_OptionsFromURL(t *testing.T) {
	opts, err := Config{URL: "redis://:pw@cache.local:6380/2"}.Options()
	require.NoError(t, err)
	assert.Equal(t, "cache.local:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	_, err = Config{URL: "http://cache.local"}.Options()
	assert.Error(t, err)
}

// Runs only when TEST_REDIS_ADDR points at a disposable Redis instance.
func TestSubjectSource_Integration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := NewClient(ctx, Config{URL: "redis://" + addr + "/0"})
	require.NoError(t, err)
	defer client.Close()

	const listKey, setKey, zKey, missing = "it:subjects:list", "it:subjects:set", "it:subjects:zset", "it:subjects:none"
	defer client.Del(context.Background(), listKey, setKey, zKey)
	client.Del(ctx, listKey, setKey, zKey, missing)

	require.NoError(t, client.RPush(ctx, listKey, "Math", "History", "Math").Err())
	require.NoError(t, client.SAdd(ctx, setKey, "Physics", "Art").Err())

	require.NoError(t, client.ZAdd(ctx, zKey, redis.Z{Score: 2, Member: "History"}, redis.Z{Score: 1, Member: "Math"}).Err())

	names, err := NewSubjectSource(client, listKey).LoadSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "History"}, names)

	names, err = NewSubjectSource(client, setKey).LoadSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Art", "Physics"}, names)

	names, err = NewSubjectSource(client, zKey).LoadSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "History"}, names)

	names, err = NewSubjectSource(client, missing).LoadSubjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
