//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	refreshStream   = "stream:places:refresh"
	refreshedStream = "stream:places:refreshed"
)

type placesRefreshEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	CitySlug    string    `json:"city_slug,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	city := flag.String("city", "stockholm", "city slug, empty for whole country")
	wait := flag.Duration("wait", 2*time.Minute, "how long to wait for the worker response")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := placesRefreshEvent{
		RequestID:   uuid.New(),
		CitySlug:    *city,
		RequestedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Запоминаем последний ID, чтобы читать только новые ответы
	lastID := "$"
	if msgs, err := client.XRevRangeN(ctx, refreshedStream, "+", "-", 1).Result(); err == nil && len(msgs) == 1 {
		lastID = msgs[0].ID
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: refreshStream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", refreshStream)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   City: %q\n", event.CitySlug)
	fmt.Printf("\nWaiting for response in %s...\n", refreshedStream)

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{refreshedStream, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				log.Printf("read failed: %v", err)
			}
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var response map[string]interface{}
				if err := json.Unmarshal([]byte(raw), &response); err != nil {
					continue
				}
				if response["request_id"] == event.RequestID.String() {
					pretty, _ := json.MarshalIndent(response, "", "  ")
					fmt.Printf("\nResponse received:\n%s\n", pretty)
					return
				}
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
