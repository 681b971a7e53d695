package config

import (
	"Market/events"
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

func SetupRedisConnection(config RedisConfig) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("ping redis %s: %w", config.Addr, err)
	}

	return redisClient, nil
}

// SetupPublisher builds the event publisher selected by events.driver.
func SetupPublisher(config Config) (events.Publisher, error) {
	switch config.Events.Driver {
	case EventsNone, "":
		return events.NopPublisher{}, nil
	case EventsLog:
		return events.LogPublisher{}, nil
	case EventsRedis:
		rdb, err := SetupRedisConnection(config.Redis)
		if err != nil {
			return nil, err
		}
		return events.NewRedisPublisher(rdb, config.Events.Stream, config.Events.MaxLen), nil
	case EventsAMQP:
		return events.NewAMQPPublisher(config.Events.AMQPURL, config.Events.Queue)
	default:
		return nil, fmt.Errorf("unknown events driver %q", config.Events.Driver)
	}
}
