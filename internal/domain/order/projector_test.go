package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestStepIndex(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected int
	}{
		{OrderStatusPendingPayment, 0},
		{OrderStatusPaid, 1},
		{OrderStatusProcessing, 2},
		{OrderStatusShipping, 3},
		{OrderStatusDelivered, 4},
		{OrderStatusCancelled, CancelledStepIndex},
		{OrderStatus("UNKNOWN"), CancelledStepIndex},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.StepIndex())
		})
	}
}

func TestSynthesizeTimelineDelivered(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o := &Order{
		ID:        "O1",
		Status:    OrderStatusDelivered,
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(4 * time.Hour),
	}

	events := SynthesizeTimeline(o)

	// Creation plus four status transitions, no payment recorded
	require.Len(t, events, 5)

	// Most recent first
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Timestamp.After(events[i-1].Timestamp))
	}

	assert.Equal(t, EventStatusChange, events[0].Type)
	assert.Equal(t, OrderStatusShipping, events[0].FromStatus)
	assert.Equal(t, OrderStatusDelivered, events[0].ToStatus)
	assert.True(t, events[0].Synthetic)

	last := events[len(events)-1]
	assert.Equal(t, EventCreated, last.Type)
	assert.Equal(t, createdAt, last.Timestamp)
	assert.False(t, last.Synthetic)
}

func TestSynthesizeTimelineIsDeterministic(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	o := &Order{
		ID:        "O2",
		Status:    OrderStatusShipping,
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(2 * time.Hour),
		Payment: &Payment{
			Status:      PaymentStatusCompleted,
			PaymentDate: timePtr(createdAt.Add(10 * time.Minute)),
		},
	}

	first := SynthesizeTimeline(o)
	second := SynthesizeTimeline(o)
	assert.Equal(t, first, second)
}

func TestSynthesizeTimelineCancelled(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cancelledAt := createdAt.Add(45 * time.Minute)
	o := &Order{
		ID:              "O3",
		Status:          OrderStatusCancelled,
		CancelledReason: strPtr("changed my mind"),
		CreatedAt:       createdAt,
		UpdatedAt:       cancelledAt,
	}

	events := SynthesizeTimeline(o)

	// No intermediate progression events for a cancelled order
	require.Len(t, events, 2)

	assert.Equal(t, EventCancelled, events[0].Type)
	assert.Equal(t, TagError, events[0].Tag)
	assert.Equal(t, cancelledAt, events[0].Timestamp)
	assert.Equal(t, "changed my mind", events[0].Detail)

	assert.Equal(t, EventCreated, events[1].Type)
}

func TestSynthesizeTimelinePaymentTags(t *testing.T) {
	tests := []struct {
		status   PaymentStatus
		expected EventTag
	}{
		{PaymentStatusPending, TagPending},
		{PaymentStatusCompleted, TagSuccess},
		{PaymentStatusFailed, TagError},
		{PaymentStatusRefunded, TagNeutral},
	}

	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			o := &Order{
				Status:    OrderStatusPaid,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
				Payment: &Payment{
					Status:      tt.status,
					PaymentDate: timePtr(createdAt.Add(5 * time.Minute)),
				},
			}

			events := SynthesizeTimeline(o)

			var payment *TimelineEvent
			for i := range events {
				if events[i].Type == EventPayment {
					payment = &events[i]
					break
				}
			}
			require.NotNil(t, payment)
			assert.Equal(t, tt.expected, payment.Tag)
			assert.Equal(t, tt.status, payment.PaymentStatus)
		})
	}
}

func TestSynthesizeTimelinePaymentDateFallback(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o := &Order{
		Status:    OrderStatusPaid,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Payment:   &Payment{Status: PaymentStatusPending},
	}

	events := SynthesizeTimeline(o)

	var payment *TimelineEvent
	for i := range events {
		if events[i].Type == EventPayment {
			payment = &events[i]
			break
		}
	}
	require.NotNil(t, payment)
	assert.Equal(t, createdAt, payment.Timestamp)
}

func TestSynthesizeTimelineNilOrder(t *testing.T) {
	assert.Nil(t, SynthesizeTimeline(nil))
}
