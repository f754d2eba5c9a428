// Package notifier watches stage listings and reports orders that newly appear in them.
//
// A Notifier polls one (role, actor, stage) listing on a cron schedule. The first
// successful poll only records what is already there; every later poll emits one inbox
// entry per order id not seen in the previous poll and runs the side effects (push,
// metrics) once for the whole batch. Polling pauses while no viewer is visible, ticks
// immediately on start and on becoming visible, and skips a tick while the previous one
// is still running.
//
// The Manager owns one Notifier per key and exposes them as subscriptions.
package notifier
