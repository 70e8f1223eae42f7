// README: Change feed tells other instances and connected browsers that a collection changed.
package changefeed

import "time"

// DefaultChannel is the Redis channel change events travel on.
const DefaultChannel = "tabela:changes"

// Event announces that the collection named by Topic changed on the
// instance identified by Origin.
type Event struct {
	Topic  string    `json:"topic"`
	Origin string    `json:"origin"`
	At     time.Time `json:"at"`
}
