// events — публикация доменных событий (регистрация, сброс пароля,
// включение/выключение MFA) для внешних подсистем (нотификации и т.п.).
//
// Контракт: fire-and-forget. Публикация никогда не блокирует и не валит
// вызывающую операцию; ошибки доставки только логируются.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Типы событий, эмитируемых ядром.
const (
	TypeUserRegistered         = "user.registered"
	TypePasswordResetRequested = "password.reset_requested"
	TypePasswordResetCompleted = "password.reset_completed"
	TypeMFAEnabled             = "mfa.enabled"
	TypeMFADisabled            = "mfa.disabled"
	TypeSessionsRevoked        = "sessions.revoked"
)

// Event — доменное событие.
// Data несёт полезную нагрузку для консьюмера (например, одноразовый токен
// для письма сброса пароля); чувствительные значения дальше брокера не идут.
type Event struct {
	Type       string            `json:"type"`
	UserID     uuid.UUID         `json:"user_id"`
	TenantID   uuid.UUID         `json:"tenant_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data,omitempty"`
}

// Publisher — контракт паблишера для сервисного слоя.
type Publisher interface {
	// Publish отправляет событие. Ошибок не возвращает: доставка
	// не относится к критическому пути операции.
	Publish(ctx context.Context, e Event)
	// Close закрывает паблишер.
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewKafka создаёт паблишер поверх kafka-go.
// Async-режим: WriteMessages возвращается не дожидаясь брокера, ошибки
// доставки попадают в логгер врайтера.
func NewKafka(brokers []string, topic string, log *slog.Logger) Publisher {
	if log == nil {
		log = slog.Default()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error("kafka_write_failed", slog.String("detail", fmt.Sprintf(msg, args...)))
		}),
	}

	return &kafkaPublisher{writer: writer, log: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e Event) {
	value, err := json.Marshal(e)
	if err != nil {
		p.log.Error("event_marshal_failed",
			slog.String("type", e.Type),
			slog.String("err", err.Error()),
		)
		return
	}

	msg := kafka.Message{
		Key:   []byte(e.UserID.String()),
		Value: value,
		Time:  e.OccurredAt,
	}

	// Async-writer буферизует и возвращается сразу; контекст нужен только
	// на случай закрытия врайтера.
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("event_publish_failed",
			slog.String("type", e.Type),
			slog.String("err", err.Error()),
		)
	}
}

func (p *kafkaPublisher) Close() error { return p.writer.Close() }

type nopPublisher struct{}

// NewNop возвращает паблишер-заглушку для окружений без брокера.
func NewNop() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, Event) {}
func (nopPublisher) Close() error                   { return nil }
