package redis

import (
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type Storage struct {
	Namespace string
	Client    *redis.Client
	Log       zerolog.Logger
}

// Options proxies the redis options struct so callers don't need to import
// the redis library to configure storage.
type Options = redis.Options

func NewStorage(options Options, namespace string) Storage {
	return Storage{
		Namespace: namespace,
		Client:    redis.NewClient(&options),
		Log:       zerolog.New(os.Stdout),
	}
}

// NewStorageWithClient wraps an existing client. Used by tests that run
// against an in-process redis.
func NewStorageWithClient(client *redis.Client, namespace string) Storage {
	return Storage{
		Namespace: namespace,
		Client:    client,
		Log:       zerolog.New(os.Stdout),
	}
}

func (r *Storage) Close() error {
	return eris.Wrap(r.Client.Close(), "")
}
