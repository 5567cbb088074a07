// Package storage provides the key-value persistence the conversation
// services write their state through.
package storage

// KeyValue is a synchronous string key-value store. Reads report presence
// explicitly; removal of an absent key is a no-op.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}
