// Package redis connects to the optional Redis server used as the shared
// rate limit store when the API runs with more than one replica.
package redis
