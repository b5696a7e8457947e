package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ClassroomDayKey returns the cache key for a classroom's full-day lesson list.
// The key is deliberately period-agnostic: the unfiltered day is cached once
// and filtered in memory per request.
func (r *CacheKeyStruct) ClassroomDayKey(classroomID, date string) string {
	return fmt.Sprintf("lessons:%s:%s", classroomID, date)
}

var CacheKey = NewCacheKeyStruct()
