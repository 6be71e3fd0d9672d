package kvdb

import (
	"context"
	"time"
)

type Client interface {
	Init() error
	Close() error
	GetHandle() any // generic handle. ToDo: kvdb.Handle
	GetConf() *Conf

	//---- Key Ops ----

	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) (int64, error)
	// Expire sets/updates expiration for a key
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) // found & updated, err

	//---- Single-value Ops ----

	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error) // val, found, err

	//---- Hash Ops ----

	SetField(ctx context.Context, key string, field string, value any) error
	GetField(ctx context.Context, key string, field string) (string, bool, error) // val, found, err
	SetFields(ctx context.Context, key string, fields map[string]any) error
	// GetFields returns values of found fields. By comparing lengths, you can check if all fields are found
	GetFields(ctx context.Context, key string, fields ...string) (map[string]string, error)
	// RemoveFields removes the specified fields in a hash key. Returns the number of fields actually removed.
	RemoveFields(ctx context.Context, key string, fields ...string) (int64, error)
	GetAllFields(ctx context.Context, key string) (map[string]string, error)
}
