package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"lead_dashboard/internal/domain"
)

const (
	ActionNew    = "new"
	ActionUpdate = "update"
)

// RabbitMQ announces archived leads on a topic exchange. Messages are routed
// by priority, e.g. "leads.high", so consumers can subscribe to hot leads only.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (*RabbitMQ, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey+".#", cfg.Exchange, false, nil); err != nil {
		return fail("bind queue", err)
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey+".#",
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

type LeadPayload struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	UserID      string `json:"user_id"`
	CommentText string `json:"comment_text"`
	PostID      string `json:"post_id"`
	Priority    string `json:"priority"`
	AIResponse  string `json:"ai_response"`
}

type LeadMessage struct {
	Action       string      `json:"action"` // "new" or "update"
	PriorityRank string      `json:"priority_rank"`
	Lead         LeadPayload `json:"lead"`
	Timestamp    time.Time   `json:"timestamp"`
}

func NewLeadMessage(lead *domain.Lead, isNew bool, now time.Time) LeadMessage {
	action := ActionUpdate
	if isNew {
		action = ActionNew
	}

	return LeadMessage{
		Action:       action,
		PriorityRank: domain.RankPriority(lead.Priority).String(),
		Lead: LeadPayload{
			ID:          lead.ID().String(),
			Timestamp:   lead.Timestamp,
			Source:      lead.Source,
			UserID:      lead.UserID,
			CommentText: lead.CommentText,
			PostID:      lead.PostID,
			Priority:    lead.Priority,
			AIResponse:  lead.AIResponse,
		},
		Timestamp: now.UTC(),
	}
}

// RoutingKey returns "<base>.<rank>" for the lead's priority.
func RoutingKey(base string, lead *domain.Lead) string {
	return base + "." + domain.RankPriority(lead.Priority).String()
}

func (r *RabbitMQ) Publish(ctx context.Context, lead *domain.Lead, isNew bool) error {
	msg := NewLeadMessage(lead, isNew, time.Now())

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := RoutingKey(r.routingKey, lead)
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    msg.Lead.ID,
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published lead",
		"lead_id", msg.Lead.ID,
		"action", msg.Action,
		"routing_key", key,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
