package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminCourseListKey returns the cache key for an admin's course list
func (r *CacheKeyStruct) AdminCourseListKey(adminID int) string {
	return fmt.Sprintf("admin:%d:courses", adminID)
}

var CacheKey = NewCacheKeyStruct()
