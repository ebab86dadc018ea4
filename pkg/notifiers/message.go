// Package notifiers delivers finished watcher messages to chat and queue
// sinks. The text is composed upstream; sinks only carry it.
package notifiers

// Kind labels what a message announces.
type Kind string

const (
	KindResult     Kind = "result"
	KindPregame    Kind = "pregame"
	KindScoreboard Kind = "scoreboard"
)

// Message is one finished, human-readable notification.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}
