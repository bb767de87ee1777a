package xkv

import (
	"strconv"

	"github.com/zeromicro/go-zero/core/stores/kv"
)

// Store wraps the go-zero kv store with a couple of typed helpers.
type Store struct {
	kv.Store
}

func NewStore(c kv.KvConf) *Store {
	return &Store{Store: kv.NewStore(c)}
}

// GetInt reads an integer value, treating a missing key as zero.
func (s *Store) GetInt(key string) (int, error) {
	val, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	if val == "" {
		return 0, nil
	}
	return strconv.Atoi(val)
}
