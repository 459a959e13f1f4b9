package customdict

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// Store persists words that extend the dictionaries at runtime.
type Store interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

const defaultKey = "wordfix:custom_words"

// CustomDict is the Store behind the "redis" driver. One Redis set holds
// every custom word.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New uses the set named wordfix:custom_words.
func New(client *redis.Client) *CustomDict {
	return NewWithKey(client, defaultKey)
}

// NewWithKey uses the set named key, or the default set when key is empty.
func NewWithKey(client *redis.Client, key string) *CustomDict {
	if key == "" {
		key = defaultKey
	}
	return &CustomDict{client: client, key: key}
}

func (cd *CustomDict) Add(ctx context.Context, word string) error {
	if err := cd.client.SAdd(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("redis add %q: %w", word, err)
	}
	return nil
}

// Remove succeeds when word was never added.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	if err := cd.client.SRem(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("redis remove %q: %w", word, err)
	}
	return nil
}

// All returns the members of the set sorted, since Redis sets are unordered.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis members %s: %w", cd.key, err)
	}
	sort.Strings(words)
	return words, nil
}

func (cd *CustomDict) Close() error {
	return cd.client.Close()
}
