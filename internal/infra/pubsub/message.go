package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"
)

// Message attribute keys. Subscribers can filter on kind without decoding data.
const (
	AttrEventID   = "event_id"
	AttrKind      = "kind"
	AttrAccountID = "account_id"
	AttrRequestID = "request_id"
)

const localSubscription = "projects/local/subscriptions/score-events"

// PushMessage is the JSON body a Pub/Sub push subscription posts to the score worker.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage builds the envelope the local publisher posts, mirroring what Google delivers.
func NewPushMessage(event *entity.ScoreEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal score event")
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID.String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	return msg, nil
}

// ScoreEvent decodes the event carried in the message data.
func (m *PushMessage) ScoreEvent() (*entity.ScoreEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.ScoreEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal score event")
	}

	return &event, nil
}

// RequestID returns the id of the request that emitted the event, if it was recorded.
func (m *PushMessage) RequestID() string {
	return m.Message.Attributes[AttrRequestID]
}

func eventAttributes(event *entity.ScoreEvent) map[string]string {
	attrs := map[string]string{
		AttrEventID:   event.ID.String(),
		AttrKind:      string(event.Kind),
		AttrAccountID: event.AccountID.String(),
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return attrs
}
