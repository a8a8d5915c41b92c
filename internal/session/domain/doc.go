// Package domain defines the calculator session: the builds and enemies being
// compared, the chart settings and the skill under test.
//
// State only changes through Apply, which folds one Action into a new State
// and never mutates its input. Actions travel as JSON envelopes so the same
// reducer serves HTTP, websocket and CLI callers.
//
// Saved is the persisted form of a session, stored as a share token.
package domain
