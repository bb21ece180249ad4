// Package history keeps a bounded record of submitted command lines and the
// cursor state for Up/Down browsing.
//
// Consecutive duplicates and empty lines are never stored, and the oldest
// entry is evicted first when the store is full. Browsing snapshots the
// in-progress line on entry and hands it back when navigation walks past the
// newest entry.
package history
