package livefeed

import (
	"encoding/json"
	"testing"
	"time"

	"trekhub/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "trekMembers",
	}
	hub.register <- client

	event := models.ChangeEvent{Collection: "trekMembers", Method: "updated", EntityID: "tm-1"}
	data, _ := json.Marshal(event)
	hub.Publish("trekMembers", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestHubDroppedSlowClientUnregisterIsSafe(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// Nothing ever reads from slow.Send, so the first broadcast drops
	// it and closes its channel.
	slow := &Client{Send: make(chan []byte), Room: "trekMembers"}
	healthy := &Client{Send: make(chan []byte, 10), Room: "trekMembers"}
	hub.register <- slow
	hub.register <- healthy

	hub.Publish("trekMembers", []byte(`{"method":"created"}`))
	<-healthy.Send

	// Connection teardown reports the dropped client a second time;
	// the hub must not close its channel again.
	select {
	case hub.unregister <- slow:
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped accepting unregisters")
	}

	data := []byte(`{"method":"updated"}`)
	go hub.Publish("trekMembers", data)

	select {
	case got := <-healthy.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("hub loop died after unregistering a dropped client")
	}
}

func TestHubWildcardRoomSeesAllCollections(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	watcher := &Client{
		Send: make(chan []byte, 10),
		Room: "*",
	}
	hub.register <- watcher

	event := models.ChangeEvent{Collection: "allowedEmails", Method: "updated", EntityID: "x@y.z"}
	data, _ := json.Marshal(event)
	hub.Publish("allowedEmails", data)

	select {
	case got := <-watcher.Send:
		var decoded models.ChangeEvent
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("invalid event payload: %v", err)
		}
		if decoded.Collection != "allowedEmails" {
			t.Fatalf("expected allowedEmails event, got %+v", decoded)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}
}
