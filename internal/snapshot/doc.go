// Package snapshot caches the complete suite list per project key. A
// snapshot is the product of one full paginated fetch at maximum page
// size; within its time-to-live every caller shares the same immutable
// list, and concurrent cache misses coalesce into a single in-flight
// fetch.
package snapshot
