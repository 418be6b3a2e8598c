package logger

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sukalov/lyricsync/internal/utils"
)

var (
	channelID int64
	once      sync.Once
	botClient BotClient
)

// BotClient ships a log line to a chat channel. Satisfied by a thin wrapper
// around a Telegram bot in cmd/lyricsyncd; when no client is installed the
// logger falls back to stdout.
type BotClient interface {
	SendMessage(chatID int64, text string) error
}

func Init(client BotClient) error {
	var initErr error
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"LOG_CHANNEL_ID"})
		if err != nil {
			initErr = fmt.Errorf("failed to load LOG_CHANNEL_ID: %w", err)
			return
		}

		channelID, err = strconv.ParseInt(env["LOG_CHANNEL_ID"], 10, 64)
		if err != nil {
			initErr = fmt.Errorf("failed to parse LOG_CHANNEL_ID: %w", err)
			return
		}

		botClient = client
	})

	return initErr
}

func Info(message string) {
	sendLog("ℹ️ INFO", message)
}

func Error(message string) {
	sendLog("❌ ERROR", message)
}

func Debug(message string) {
	sendLog("🔍 DEBUG", message)
}

func Success(message string) {
	sendLog("✅ SUCCESS", message)
}

func sendLog(prefix, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)

	if botClient == nil {
		fmt.Println(logMessage)
		return
	}

	go func() {
		if err := botClient.SendMessage(channelID, logMessage); err != nil {
			fmt.Printf("Failed to send log to channel: %v\nLog was: %s\n", err, logMessage)
		}
	}()
}
