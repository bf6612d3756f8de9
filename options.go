package offersearch

import "time"

type clientConfig struct {
	addrs            []string
	username         string
	password         string
	db               int
	keyPrefix        string
	readinessTimeout time.Duration
}

// Option configures the Client.
type Option func(*clientConfig)

// WithAddrs sets the Redis/Valkey addresses to connect to.
func WithAddrs(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithAuth sets credentials for the database connection.
func WithAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDB selects a logical database index.
func WithDB(db int) Option {
	return func(c *clientConfig) { c.db = db }
}

// WithKeyPrefix namespaces all store keys. Empty uses the default prefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) { c.keyPrefix = prefix }
}

// WithReadinessTimeout bounds the initial connection wait.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.readinessTimeout = d }
}
