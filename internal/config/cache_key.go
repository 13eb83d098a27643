package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminSessionKey returns the cache key holding an admin's active JWT ID.
func (r *CacheKeyStruct) AdminSessionKey(adminID int) string {
	return fmt.Sprintf("admin:%d:session", adminID)
}

// ChangefeedChannel returns the Redis Pub/Sub channel carrying collection
// change events. A single channel fans out to every connected instance.
func (r *CacheKeyStruct) ChangefeedChannel() string {
	return "changefeed"
}

var CacheKey = NewCacheKeyStruct()
