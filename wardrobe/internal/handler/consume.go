package handler

import (
	"encoding/json"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Consumer appends loan events from Kafka to the journal.
type Consumer struct {
	recorder EventRecorder
	log      *zap.Logger
	ready    chan struct{}
}

func NewConsumer(recorder EventRecorder, log *zap.Logger) *Consumer {
	return &Consumer{
		recorder: recorder,
		log:      log.Named("consumer"),
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan struct{} {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.LoanEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("json.Unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recorder.RecordEvent(session.Context(), event); err != nil {
				if errors.Is(err, errs.ErrValidation) || errors.Is(err, errs.ErrNotFound) {
					// unprocessable, retrying will not help
					consumer.log.Error("drop loan event", zap.String("uid", event.EventUID), zap.Error(err))
					session.MarkMessage(message, "")
					continue
				}
				consumer.log.Error("RecordEvent", zap.String("uid", event.EventUID), zap.Error(err))
				return err
			}

			consumer.log.Debug("loan event recorded",
				zap.String("uid", event.EventUID),
				zap.Int64("loan_id", event.LoanID),
				zap.Time("timestamp", message.Timestamp))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
