package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zakia-developer558/geburtstagswunsche/internal/cart"
	"github.com/zakia-developer558/geburtstagswunsche/internal/contracts"
	"github.com/shopspring/decimal"
)

type PublishMetadata struct {
	CorrelationID string
	CausationID   string
}

// OrderEventsPublisher hands a checked-out cart to order processing.
type OrderEventsPublisher interface {
	PublishOrderPlaced(ctx context.Context, c *cart.Cart, shippingCost decimal.Decimal, meta PublishMetadata) error
	Close() error
}

type RabbitOrderEventsPublisher struct {
	ch      *amqp.Channel
	seqRepo SequenceRepository
}

func NewRabbitOrderEventsPublisher(conn *amqp.Connection, seqRepo SequenceRepository) (*RabbitOrderEventsPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}

	return &RabbitOrderEventsPublisher{ch: ch, seqRepo: seqRepo}, nil
}

func (p *RabbitOrderEventsPublisher) PublishOrderPlaced(ctx context.Context, c *cart.Cart, shippingCost decimal.Decimal, meta PublishMetadata) error {
	seq, err := p.seqRepo.NextSequence(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	env := contracts.BuildOrderPlacedEvent(c, shippingCost, contracts.EnvelopeOptions{
		PartitionKey:  c.ID,
		Sequence:      seq,
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
	})

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced envelope: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		OrderPlacedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (p *RabbitOrderEventsPublisher) Close() error {
	return p.ch.Close()
}

// LogOrderEventsPublisher logs the order instead of publishing it, so the
// storefront still runs when no broker is configured.
type LogOrderEventsPublisher struct {
	Logger *log.Logger
}

func (p *LogOrderEventsPublisher) PublishOrderPlaced(ctx context.Context, c *cart.Cart, shippingCost decimal.Decimal, meta PublishMetadata) error {
	p.Logger.Printf("order placed (no broker configured): cart=%s session=%s items=%d total=%s",
		c.ID, c.SessionID, len(c.Items), c.Subtotal().Add(shippingCost))
	return nil
}

func (p *LogOrderEventsPublisher) Close() error { return nil }
