// Package engine is the materialization core. An Engine owns one
// consumer group over the pixel event log and folds the log into a
// board projection plus a bounded recent-event history.
//
// Writes never touch the projections directly: SubmitPaint validates
// and appends to the log, and the consumer loop folds the appended
// event back in along with everything else. Replaying the same log
// always converges to the same board.
package engine
