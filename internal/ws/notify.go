package ws

import (
	"encoding/json"
	"time"
)

type FeedUpdatedEvent struct {
	Type      string `json:"type"`
	PostID    string `json:"post_id"`
	Timestamp string `json:"timestamp"`
}

// FeedNotifier broadcasts feed change events through a hub. A nil hub makes
// every notification a no-op.
type FeedNotifier struct {
	hub *Hub
}

func NewFeedNotifier(hub *Hub) *FeedNotifier {
	return &FeedNotifier{hub: hub}
}

func (n *FeedNotifier) NotifyFeedUpdated(postID string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := FeedUpdatedEvent{
		Type:      "feed_updated",
		PostID:    postID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
