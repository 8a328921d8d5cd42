// Package store persists favorites and episode snapshots in BoltDB, with an
// in-memory layer promoted on access for hot-path reads.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

// Bucket names
var (
	bucketFavorites = []byte("favorites")
	bucketEpisodes  = []byte("episodes")
)

// ViewerStore implements domain.Store using BoltDB.
type ViewerStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// New opens (or creates) the store under cacheDir. An empty cacheDir yields
// a memory-only store with no persistence.
func New(cacheDir string) (*ViewerStore, error) {
	if cacheDir == "" {
		return &ViewerStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cacheDir, "viewer.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketFavorites, bucketEpisodes} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ViewerStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *ViewerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *ViewerStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *ViewerStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *ViewerStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Favorites ===

// GetFavorites returns saved shows ordered by when they were added.
func (s *ViewerStore) GetFavorites() ([]domain.FavoriteShow, bool) {
	favs := s.readFavorites()
	if favs == nil {
		return nil, false
	}
	sort.Slice(favs, func(i, j int) bool { return favs[i].AddedAt < favs[j].AddedAt })
	return favs, true
}

func (s *ViewerStore) readFavorites() []domain.FavoriteShow {
	if s.db == nil {
		var favs []domain.FavoriteShow
		s.mu.RLock()
		defer s.mu.RUnlock()
		prefix := string(bucketFavorites) + ":"
		for k, data := range s.cache {
			if len(k) > len(prefix) && k[:len(prefix)] == prefix {
				var fav domain.FavoriteShow
				if json.Unmarshal(data, &fav) == nil {
					favs = append(favs, fav)
				}
			}
		}
		return favs
	}

	var favs []domain.FavoriteShow
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var fav domain.FavoriteShow
			if err := json.Unmarshal(v, &fav); err == nil {
				favs = append(favs, fav)
			}
			return nil
		})
	})
	return favs
}

func (s *ViewerStore) SaveFavorite(fav domain.FavoriteShow) error {
	return s.set(bucketFavorites, fav.ID, fav)
}

func (s *ViewerStore) RemoveFavorite(showID string) error {
	s.delete(bucketFavorites, showID)
	return nil
}

func (s *ViewerStore) IsFavorite(showID string) bool {
	var fav domain.FavoriteShow
	return s.get(bucketFavorites, showID, &fav)
}

// === Episode snapshots ===

func (s *ViewerStore) GetEpisodeSnapshot(showID string) (domain.EpisodeSnapshot, bool) {
	var snap domain.EpisodeSnapshot
	ok := s.get(bucketEpisodes, showID, &snap)
	return snap, ok
}

func (s *ViewerStore) SaveEpisodeSnapshot(snap domain.EpisodeSnapshot) error {
	return s.set(bucketEpisodes, snap.ShowID, snap)
}

// === Invalidation ===

func (s *ViewerStore) InvalidateShow(showID string) {
	s.delete(bucketEpisodes, showID)
}

func (s *ViewerStore) InvalidateAll() {
	s.mu.Lock()
	for k := range s.cache {
		prefix := string(bucketEpisodes) + ":"
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketEpisodes); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketEpisodes)
		return err
	})
}
