package lyrics

import (
	"context"
	"fmt"

	"github.com/sukalov/lyricsync/internal/db"
	"github.com/sukalov/lyricsync/internal/logger"
	"github.com/sukalov/lyricsync/internal/lyrics/parsers/lrc"
)

// SongStore supplies the raw lyric tracks for songs.
type SongStore interface {
	FindSong(ctx context.Context, id string) (db.Song, bool, error)
	AllSongs(ctx context.Context) ([]db.Song, error)
}

// LineCache holds parsed composite lines keyed by song id.
type LineCache interface {
	GetLines(ctx context.Context, songID string) ([]lrc.Line, bool, error)
	SetLines(ctx context.Context, songID string, lines []lrc.Line) error
}

// Service handles lyric parsing on top of a song store, keeping parsed lines
// in an optional cache. Cache failures are logged and never fatal: the store
// plus the parser always suffice to answer.
type Service struct {
	store SongStore
	cache LineCache
}

func NewService(store SongStore, cache LineCache) *Service {
	return &Service{
		store: store,
		cache: cache,
	}
}

// Lines returns the parsed composite lines for a song, from cache when
// possible.
func (s *Service) Lines(ctx context.Context, songID string) ([]lrc.Line, error) {
	if s.cache != nil {
		lines, ok, err := s.cache.GetLines(ctx, songID)
		if err != nil {
			logger.Error(fmt.Sprintf("cache lookup failed for song %s: %v", songID, err))
		} else if ok {
			return lines, nil
		}
	}
	return s.Refresh(ctx, songID)
}

// Refresh re-parses a song's tracks from the store and overwrites the cache.
func (s *Service) Refresh(ctx context.Context, songID string) ([]lrc.Line, error) {
	song, found, err := s.store.FindSong(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("failed to load song %s: %w", songID, err)
	}
	if !found {
		return nil, fmt.Errorf("no song with id %s", songID)
	}

	lines := parseSong(song)
	if s.cache != nil {
		if err := s.cache.SetLines(ctx, songID, lines); err != nil {
			logger.Error(fmt.Sprintf("failed to cache lines for song %s: %v", songID, err))
		}
	}
	return lines, nil
}

// SyncAll parses and caches every song in the store. Per-song cache failures
// are logged and skipped; the count of successfully synced songs is returned.
func (s *Service) SyncAll(ctx context.Context) (int, error) {
	songs, err := s.store.AllSongs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load songs: %w", err)
	}

	synced := 0
	for _, song := range songs {
		lines := parseSong(song)
		if s.cache != nil {
			if err := s.cache.SetLines(ctx, song.ID, lines); err != nil {
				logger.Error(fmt.Sprintf("failed to cache lines for song %s: %v", song.ID, err))
				continue
			}
		}
		synced++
	}
	return synced, nil
}

func parseSong(song db.Song) []lrc.Line {
	return lrc.Parse(song.Original, song.Translated.String, song.Romanized.String, song.Dynamic.String)
}
