package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/lyricsync/internal/db"
	"github.com/sukalov/lyricsync/internal/logger"
	"github.com/sukalov/lyricsync/internal/lyrics"
	"github.com/sukalov/lyricsync/internal/redis"
)

// telegramSink adapts a Telegram bot to the logger's channel sink.
type telegramSink struct {
	bot *tgbotapi.BotAPI
}

func (s telegramSink) SendMessage(chatID int64, text string) error {
	_, err := s.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func main() {
	if token := os.Getenv("LOG_BOT_TOKEN"); token != "" {
		bot, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			log.Printf("log bot unavailable, falling back to stdout: %v", err)
		} else if err := logger.Init(telegramSink{bot: bot}); err != nil {
			log.Printf("logger init failed, falling back to stdout: %v", err)
		}
	}

	store, err := db.NewManager()
	if err != nil {
		log.Fatalf("database initialization failed: %v", err)
	}
	defer store.Close()

	cache, err := redis.NewCache()
	if err != nil {
		log.Fatalf("redis initialization failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	service := lyrics.NewService(store, cache)
	synced, err := service.SyncAll(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("sync failed: %v", err))
		log.Fatalf("sync failed: %v", err)
	}

	logger.Success(fmt.Sprintf("sync completed: %d songs parsed and cached", synced))
	fmt.Printf("synced %d songs\n", synced)
}
