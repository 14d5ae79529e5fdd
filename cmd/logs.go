package cmd

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/todolabs/rocketd/internal/config"
	"github.com/todolabs/rocketd/internal/ui"
)

var (
	logsFollow    bool
	logsTail      int
	logsRedisAddr string
	logsStream    string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the request activity stream",
	Long: `View request activity recorded by the server in Redis.

Requires 'activity.enabled: true' in rocketd.yaml and a running server.

Examples:
  rocketd logs              # Show recent requests
  rocketd logs -f           # Follow new requests in real-time
  rocketd logs --tail 50    # Show the last 50 requests`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow new activity")
	logsCmd.Flags().IntVar(&logsTail, "tail", 100, "Number of entries to show from the end")
	logsCmd.Flags().StringVar(&logsRedisAddr, "redis-addr", "", "Redis address (overrides config)")
	logsCmd.Flags().StringVar(&logsStream, "stream", "", "Stream key (overrides config)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()
	ctx := cmd.Context()

	addr := cfg.Activity.RedisAddr
	if logsRedisAddr != "" {
		addr = logsRedisAddr
	}
	streamKey := cfg.Activity.Stream
	if logsStream != "" {
		streamKey = logsStream
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w\nMake sure Redis is running and activity is enabled", addr, err)
	}

	fmt.Printf("📋 Request activity from %s\n\n", streamKey)

	if logsFollow {
		// Follow mode: stream new entries
		fmt.Println("Following activity... (Ctrl+C to stop)")
		lastID := "$" // Start from new entries

		for {
			streams, err := rdb.XRead(ctx, &redis.XReadArgs{
				Streams: []string{streamKey, lastID},
				Block:   5 * time.Second,
				Count:   10,
			}).Result()

			if err == redis.Nil {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to read stream: %w", err)
			}

			for _, stream := range streams {
				for _, msg := range stream.Messages {
					printActivityEntry(msg)
					lastID = msg.ID
				}
			}
		}
	}

	entries, err := rdb.XRevRange(ctx, streamKey, "+", "-").Result()
	if err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}

	if len(entries) == 0 {
		fmt.Print(ui.InfoBox("No activity", "The stream is empty. Requests are recorded once the server runs with activity enabled."))
		return nil
	}

	// Entries come newest first; show the last N oldest first
	limit := logsTail
	if limit > len(entries) {
		limit = len(entries)
	}
	for i := limit - 1; i >= 0; i-- {
		printActivityEntry(entries[i])
	}

	return nil
}

func printActivityEntry(msg redis.XMessage) {
	timestamp := msg.Values["timestamp"]
	method := msg.Values["method"]
	path := msg.Values["path"]
	status := msg.Values["status"]
	duration := msg.Values["duration_ms"]

	// Icon based on status class
	icon := "•"
	if s, ok := status.(string); ok && s != "" {
		switch s[0] {
		case '2':
			icon = "✓"
		case '3':
			icon = "➜"
		case '4':
			icon = "⚠️"
		case '5':
			icon = "💥"
		}
	}

	// Truncate runaway paths for display
	pathStr := fmt.Sprintf("%v", path)
	if len(pathStr) > 100 {
		pathStr = pathStr[:100] + "..."
	}

	fmt.Printf("[%v] %s %v %v %v (%vms)\n", timestamp, icon, status, method, pathStr, duration)
}
