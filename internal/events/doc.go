// Package events provides the change-notification mechanism for memory-state
// writes. Stores publish a StateChange after every successful write; observers
// (dashboards, statistics views) register handlers on the Notifier to be told
// about them. The package is deliberately decoupled from any event-loop or UI
// mechanism: it is plain callback registration.
package events
