package events_test

import (
	"github.com/casualjim/mxevents/events"
)

// topic is a minimal state content used to exercise the state envelope.
type topic struct {
	Topic string   `json:"topic"`
	Tags  []string `json:"tags,omitempty"`
}

func (topic) EventType() events.EventType { return events.RoomTopic }

func (t *topic) UnmarshalJSON(data []byte) error {
	type plain topic
	return events.UnmarshalContent(data, (*plain)(t), "topic")
}
