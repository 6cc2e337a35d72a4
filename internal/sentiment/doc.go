// Package sentiment keeps the process-wide tally of classified reviews.
//
// The tally is advisory display state: it is not persisted, and every process
// owns an independent copy identified by its instance ID.
package sentiment
