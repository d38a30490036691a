package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

type fakeChannel struct {
	exchange string
	msgs     []amqp.Publishing
	err      error
}

func (f *fakeChannel) Publish(exchange, _ string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.msgs = append(f.msgs, msg)
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func TestAMQPPublisherPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch}
	at := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	b := models.Booking{ID: "BKG-1", TripID: "bromo-sunrise", Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid, TotalPrice: 2_350_000}

	require.NoError(t, p.Publish(context.Background(), NewBookingEvent(BookingCreated, b, at)))
	require.Len(t, ch.msgs, 1)
	msg := ch.msgs[0]
	assert.Equal(t, Exchange, ch.exchange)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, BookingCreated, msg.Type)

	var got Event
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, "BKG-1", got.BookingID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, int64(2_350_000), got.TotalPrice)
}

func TestAMQPPublisherMessageIDsPerEvent(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch}
	at := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	b := models.Booking{ID: "BKG-1", Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid}

	require.NoError(t, p.Publish(context.Background(), NewBookingEvent(BookingCreated, b, at)))
	require.NoError(t, p.Publish(context.Background(), NewBookingEvent(domain.ActionConfirmPayment.EventName(), b, at)))
	require.NoError(t, p.Publish(context.Background(), Event{Name: BookingDeleted, BookingID: "BKG-1", OccurredAt: at}))

	require.Len(t, ch.msgs, 3)
	seen := map[string]bool{}
	for _, msg := range ch.msgs {
		assert.NotEmpty(t, msg.MessageId)
		assert.False(t, seen[msg.MessageId], "duplicate message id %s", msg.MessageId)
		seen[msg.MessageId] = true
		assert.Equal(t, "BKG-1", msg.CorrelationId)
	}
}

type failing struct{ calls int }

func (f *failing) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("channel closed")
}

func TestEmitSwallowsErrors(t *testing.T) {
	f := &failing{}
	Emit(context.Background(), f, "req-1", Event{Name: BookingDeleted, BookingID: "BKG-1"})
	assert.Equal(t, 1, f.calls)

	Emit(context.Background(), nil, "", Event{})
	assert.NoError(t, Nop{}.Publish(context.Background(), Event{}))
}
