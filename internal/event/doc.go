// Package event provides the synchronous notification bus the selection
// engine publishes on.
//
// Topics are hierarchical dot-separated strings ("selection.changed").
// Subscriptions match a topic exactly or by a trailing "*" wildcard
// ("selection.*"). Delivery is synchronous and in subscription order:
// Publish returns only after every matching handler has run, which is
// what keeps selection notifications ordered with respect to the input
// events that caused them.
package event
