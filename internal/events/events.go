// Package events fans booking lifecycle changes out to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

const (
	Exchange = "booking_events"

	BookingCreated = "booking.created"
	BookingDeleted = "booking.deleted"
)

// Event is the JSON body published for every booking change.
type Event struct {
	Name          string               `json:"event"`
	BookingID     string               `json:"bookingId"`
	TripID        string               `json:"tripId,omitempty"`
	Status        domain.BookingStatus `json:"status,omitempty"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus,omitempty"`
	TotalPrice    int64                `json:"totalPrice,omitempty"`
	OccurredAt    time.Time            `json:"occurredAt"`
}

func NewBookingEvent(name string, b models.Booking, at time.Time) Event {
	return Event{
		Name:          name,
		BookingID:     b.ID,
		TripID:        b.TripID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalPrice:    b.TotalPrice,
		OccurredAt:    at,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event; used when RABBITMQ_URL is not configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes persistent JSON messages to a durable fanout exchange.
type AMQPPublisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   channel
}

func Dial(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(Exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(Exchange, "", false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     e.OccurredAt,
		Type:          e.Name,
		MessageId:     uuid.NewString(),
		CorrelationId: e.BookingID,
		Body:          body,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Emit publishes and only logs failures; a lost event never fails the
// request that caused it.
func Emit(ctx context.Context, p Publisher, requestID string, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		utils.LogEvent(requestID, "events", e.Name, fmt.Sprintf("publish failed booking_id=%s: %v", e.BookingID, err))
	}
}
