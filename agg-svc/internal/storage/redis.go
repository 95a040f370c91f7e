package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"restaurant-recommender/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	DateLayout        = "2006-01-02"
	allTimeQueriesKey = "insights:queries"
)

func dailyQueriesKey(date string) string { return "insights:daily:" + date + ":queries" }
func sourcesKey(date string) string      { return "insights:daily:" + date + ":sources" }
func feedbackKey(date string) string     { return "insights:daily:" + date + ":feedback" }

// queryMember encodes a leaderboard member as a JSON pair so any character
// may appear in either field.
func queryMember(locality, cuisine string) string {
	raw, _ := json.Marshal([2]string{locality, cuisine})
	return string(raw)
}

func parseQueryMember(member string) (locality, cuisine string, err error) {
	var pair [2]string
	if err := json.Unmarshal([]byte(member), &pair); err != nil {
		return "", "", err
	}
	return pair[0], pair[1], nil
}

// RedisStore keeps query leaderboards in sorted sets. Daily keys expire after
// dailyTTL; the all-time leaderboard never does.
type RedisStore struct {
	rdb      *redis.Client
	dailyTTL time.Duration
}

func NewRedisStore(rdb *redis.Client, dailyTTL time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, dailyTTL: dailyTTL}
}

func (s *RedisStore) RecordPrediction(ctx context.Context, event domain.Event) error {
	date := event.Timestamp.UTC().Format(DateLayout)
	member := queryMember(event.Locality, event.Cuisine)

	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(ctx, allTimeQueriesKey, 1, member)
	pipe.ZIncrBy(ctx, dailyQueriesKey(date), 1, member)
	pipe.HIncrBy(ctx, sourcesKey(date), event.Source, 1)
	if s.dailyTTL > 0 {
		pipe.Expire(ctx, dailyQueriesKey(date), s.dailyTTL)
		pipe.Expire(ctx, sourcesKey(date), s.dailyTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) RecordFeedback(ctx context.Context, event domain.Event) error {
	date := event.Timestamp.UTC().Format(DateLayout)

	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, feedbackKey(date))
	if s.dailyTTL > 0 {
		pipe.Expire(ctx, feedbackKey(date), s.dailyTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// TopQueries reads the leaderboard for date, or the all-time one when date
// is empty.
func (s *RedisStore) TopQueries(ctx context.Context, date string, limit int64) ([]domain.QueryStat, error) {
	key := allTimeQueriesKey
	if date != "" {
		key = dailyQueriesKey(date)
	}

	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	stats := make([]domain.QueryStat, 0, len(result))
	for _, z := range result {
		member, _ := z.Member.(string)
		locality, cuisine, err := parseQueryMember(member)
		if err != nil {
			continue
		}
		stats = append(stats, domain.QueryStat{
			Locality: locality,
			Cuisine:  cuisine,
			Count:    int64(z.Score),
		})
	}
	return stats, nil
}

func (s *RedisStore) Summary(ctx context.Context, date string) (domain.DailySummary, error) {
	summary := domain.DailySummary{Date: date, Sources: map[string]int64{}}

	sources, err := s.rdb.HGetAll(ctx, sourcesKey(date)).Result()
	if err != nil {
		return domain.DailySummary{}, err
	}
	for source, raw := range sources {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		summary.Sources[source] = count
	}

	feedback, err := s.rdb.Get(ctx, feedbackKey(date)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return domain.DailySummary{}, err
	}
	summary.Feedback = feedback
	return summary, nil
}
