package redis

import (
	"context"
	"encoding/json"
	"fmt"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/sukalov/lyricsync/internal/lyrics/parsers/lrc"
	"github.com/sukalov/lyricsync/internal/utils"
)

type Cache struct {
	client *redisClient.Client
}

func NewCache() (*Cache, error) {
	env, err := utils.LoadEnv([]string{"REDIS_URL", "REDIS_PASSWORD"})
	if err != nil {
		return nil, fmt.Errorf("failed to load redis env: %w", err)
	}
	opt, err := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", env["REDIS_PASSWORD"], env["REDIS_URL"]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return &Cache{client: redisClient.NewClient(opt)}, nil
}

func lineKey(songID string) string {
	return "lyric:" + songID
}

// SetLines stores the parsed composite lines for a song as JSON.
func (c *Cache) SetLines(ctx context.Context, songID string, lines []lrc.Line) error {
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, lineKey(songID), linesJSON, 0).Err()
}

// GetLines retrieves the parsed composite lines for a song. The second
// return reports whether the song was in the cache at all.
func (c *Cache) GetLines(ctx context.Context, songID string) ([]lrc.Line, bool, error) {
	data, err := c.client.Get(ctx, lineKey(songID)).Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var lines []lrc.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, false, err
	}
	return lines, true, nil
}
