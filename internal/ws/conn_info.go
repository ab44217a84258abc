package ws

import "time"

// ConnInfo describes one attached UI client.
type ConnInfo struct {
	ConnID      string
	Username    string
	ConnectedAt time.Time
}
