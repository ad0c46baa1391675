package db

import (
	"fmt"
	"log"

	"fintrack-server/src/models"

	"github.com/dgraph-io/ristretto"
)

// Balance and category statistics are the only hot read paths; both are pure
// functions of a user's ledger rows, so they are cached per user and dropped
// whenever that user writes to the ledger.
var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func balanceCacheKey(userID int64) string {
	return fmt.Sprintf("balance:%d", userID)
}

func statsCacheKey(userID int64) string {
	return fmt.Sprintf("stats:%d", userID)
}

func GetBalanceCache(userID int64) (models.Balance, bool) {
	if Cache == nil {
		return models.Balance{}, false
	}
	value, found := Cache.Get(balanceCacheKey(userID))
	if !found {
		return models.Balance{}, false
	}
	balance, ok := value.(models.Balance)
	return balance, ok
}

func SetBalanceCache(userID int64, balance models.Balance) {
	if Cache == nil {
		return
	}
	Cache.Set(balanceCacheKey(userID), balance, 1)
}

func GetStatsCache(userID int64) ([]models.CategoryStats, bool) {
	if Cache == nil {
		return nil, false
	}
	value, found := Cache.Get(statsCacheKey(userID))
	if !found {
		return nil, false
	}
	stats, ok := value.([]models.CategoryStats)
	return stats, ok
}

func SetStatsCache(userID int64, stats []models.CategoryStats) {
	if Cache == nil {
		return
	}
	Cache.Set(statsCacheKey(userID), stats, 1)
}

// InvalidateUserAggregates drops cached balance and statistics for a user.
// Called after every expense/income write.
func InvalidateUserAggregates(userID int64) {
	if Cache == nil {
		return
	}
	Cache.Del(balanceCacheKey(userID))
	Cache.Del(statsCacheKey(userID))
}
