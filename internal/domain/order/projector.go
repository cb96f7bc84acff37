// internal/domain/order/projector.go
package order

import (
	"sort"
	"time"
)

// CancelledStepIndex is the sentinel returned by StepIndex for cancelled
// orders. It is not a position on the linear progress scale; callers use it
// to switch to the cancellation rendering branch.
const CancelledStepIndex = -1

// statusStepDelta spaces the synthetic timestamps of intermediate status
// transitions. The backend keeps no audit log for these transitions, so the
// timestamps are an approximation derived from the order's creation time.
const statusStepDelta = 30 * time.Minute

// statusProgression is the linear fulfillment path used for progress display
var statusProgression = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipping,
	OrderStatusDelivered,
}

var statusSteps = map[OrderStatus]int{
	OrderStatusPendingPayment: 0,
	OrderStatusPaid:           1,
	OrderStatusProcessing:     2,
	OrderStatusShipping:       3,
	OrderStatusDelivered:      4,
}

// StepIndex maps the status onto the linear progress scale, or
// CancelledStepIndex when the order left the scale.
func (s OrderStatus) StepIndex() int {
	if step, ok := statusSteps[s]; ok {
		return step
	}
	return CancelledStepIndex
}

// EventType identifies what a timeline event describes
type EventType string

const (
	EventCreated      EventType = "created"
	EventPayment      EventType = "payment"
	EventStatusChange EventType = "status_change"
	EventCancelled    EventType = "cancelled"
)

// EventTag drives the icon/color the presentation layer picks for an event
type EventTag string

const (
	TagInfo    EventTag = "info"
	TagPending EventTag = "pending"
	TagSuccess EventTag = "success"
	TagError   EventTag = "error"
	TagNeutral EventTag = "neutral"
)

// TimelineEvent is a presentation-only record of something that happened to
// the order. Intermediate status changes carry synthetic timestamps; they
// approximate when the transition must have occurred and are not
// authoritative history.
type TimelineEvent struct {
	Type          EventType     `json:"type"`
	Tag           EventTag      `json:"tag"`
	Timestamp     time.Time     `json:"timestamp"`
	FromStatus    OrderStatus   `json:"from_status,omitempty"`
	ToStatus      OrderStatus   `json:"to_status,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	Synthetic     bool          `json:"synthetic"`
	Detail        string        `json:"detail,omitempty"`
}

// SynthesizeTimeline derives an event timeline from the order's current
// state alone. The backend exposes no status history endpoint, so this is a
// deterministic fallback: the same Order value always yields the same events
// with the same timestamps. Swap this for a real history fetch if the
// backend ever grows one; callers only see the event slice.
//
// Events are returned sorted descending by timestamp, most recent first.
func SynthesizeTimeline(o *Order) []TimelineEvent {
	if o == nil {
		return nil
	}

	events := []TimelineEvent{{
		Type:      EventCreated,
		Tag:       TagInfo,
		Timestamp: o.CreatedAt,
	}}

	if o.Payment != nil {
		events = append(events, paymentEvent(o))
	}

	if o.Status == OrderStatusCancelled {
		detail := ""
		if o.CancelledReason != nil {
			detail = *o.CancelledReason
		}
		events = append(events, TimelineEvent{
			Type:      EventCancelled,
			Tag:       TagError,
			Timestamp: o.UpdatedAt,
			Detail:    detail,
		})
	} else if step, ok := statusSteps[o.Status]; ok {
		for i := 1; i <= step; i++ {
			events = append(events, TimelineEvent{
				Type:       EventStatusChange,
				Tag:        TagInfo,
				Timestamp:  o.CreatedAt.Add(time.Duration(i) * statusStepDelta),
				FromStatus: statusProgression[i-1],
				ToStatus:   statusProgression[i],
				Synthetic:  true,
			})
		}
	}

	// Stable so events sharing a timestamp keep their generation order
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

func paymentEvent(o *Order) TimelineEvent {
	ts := o.CreatedAt
	if o.Payment.PaymentDate != nil {
		ts = *o.Payment.PaymentDate
	}

	tag := TagPending
	switch o.Payment.Status {
	case PaymentStatusCompleted:
		tag = TagSuccess
	case PaymentStatusFailed:
		tag = TagError
	case PaymentStatusRefunded:
		tag = TagNeutral
	}

	return TimelineEvent{
		Type:          EventPayment,
		Tag:           tag,
		Timestamp:     ts,
		PaymentStatus: o.Payment.Status,
	}
}
