package ws

import "testing"

func TestPairKeyIsDirectionless(t *testing.T) {
	if PairKey("alice", "bob") != PairKey("bob", "alice") {
		t.Fatalf("expected the same key for both directions")
	}
	if PairKey("alice", "bob") == PairKey("alice", "carol") {
		t.Fatalf("expected distinct keys for distinct pairs")
	}
}

func TestHubAddAndRemoveClient(t *testing.T) {
	hub := NewHub()
	pair := PairKey("alice", "bob")

	hub.AddClient(pair, nil, ConnInfo{ConnID: "c1"})
	if len(hub.rooms) != 1 {
		t.Fatalf("expected room to be created")
	}

	hub.RemoveClient(pair, nil)
	if len(hub.rooms) != 0 {
		t.Fatalf("expected room to be removed")
	}
}
