package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Astemirdum/wardrobe-service/pkg/circuit_breaker"
	"github.com/Astemirdum/wardrobe-service/pkg/kafka"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/repository"
	"github.com/IBM/sarama"
)

type Publisher interface {
	Publish(ctx context.Context, ev model.LoanEvent) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

// NewKafkaPublisher sends loan events keyed by loan id, so one loan's events
// stay ordered within a partition.
func NewKafkaPublisher(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Publisher {
	return &kafkaPublisher{
		producer: producer,
		cb:       cb,
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, ev model.LoanEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.LoanTopic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.LoanID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

type journalPublisher struct {
	repo repository.EventRepository
}

// NewJournalPublisher writes events straight into the loan journal. Used when
// no brokers are configured.
func NewJournalPublisher(repo repository.EventRepository) Publisher {
	return &journalPublisher{repo: repo}
}

func (p *journalPublisher) Publish(ctx context.Context, ev model.LoanEvent) error {
	return p.repo.SaveLoanEvent(ctx, ev)
}
