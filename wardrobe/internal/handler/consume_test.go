package handler_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/handler"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/IBM/sarama"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/wardrobe-service/wardrobe/internal/handler/mocks"
)

type session struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *session) Context() context.Context { return s.ctx }

func (s *session) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type claim struct {
	sarama.ConsumerGroupClaim
	ch chan *sarama.ConsumerMessage
}

func (c *claim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

func message(t *testing.T, offset int64, ev model.LoanEvent) *sarama.ConsumerMessage {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: "wardrobe.loans", Offset: offset, Value: b}
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	ok := model.LoanEvent{EventUID: "a", LoanID: 1, Type: model.EventLoanCreated, Payload: json.RawMessage(`{}`)}
	bad := model.LoanEvent{EventUID: "b", LoanID: 999, Type: model.EventReturnRegistered, Payload: json.RawMessage(`{}`)}
	down := model.LoanEvent{EventUID: "c", LoanID: 2, Type: model.EventLoanCreated, Payload: json.RawMessage(`{}`)}

	ctrl := gomock.NewController(t)
	recorder := service_mocks.NewMockEventRecorder(ctrl)
	gomock.InOrder(
		recorder.EXPECT().RecordEvent(gomock.Any(), ok).Return(nil),
		recorder.EXPECT().RecordEvent(gomock.Any(), bad).Return(errors.Wrap(errs.ErrNotFound, "loan 999")),
		recorder.EXPECT().RecordEvent(gomock.Any(), down).Return(errors.New("connection refused")),
	)

	cl := &claim{ch: make(chan *sarama.ConsumerMessage, 4)}
	cl.ch <- message(t, 0, ok)
	cl.ch <- &sarama.ConsumerMessage{Offset: 1, Value: []byte("{broken")}
	cl.ch <- message(t, 2, bad)
	cl.ch <- message(t, 3, down)

	sess := &session{ctx: context.Background()}
	c := handler.NewConsumer(recorder, zap.NewNop())
	require.NoError(t, c.Setup(sess))
	<-c.Ready()

	err := c.ConsumeClaim(sess, cl)
	require.EqualError(t, err, "connection refused")
	// the failed event stays unmarked so the next session retries it
	require.Equal(t, []int64{0, 1, 2}, sess.marked)
}

func TestConsumer_ConsumeClaim_Stops(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	recorder := service_mocks.NewMockEventRecorder(ctrl)
	c := handler.NewConsumer(recorder, zap.NewNop())

	t.Run("closed channel", func(t *testing.T) {
		cl := &claim{ch: make(chan *sarama.ConsumerMessage)}
		close(cl.ch)
		require.NoError(t, c.ConsumeClaim(&session{ctx: context.Background()}, cl))
	})
	t.Run("canceled session", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cl := &claim{ch: make(chan *sarama.ConsumerMessage)}
		require.NoError(t, c.ConsumeClaim(&session{ctx: ctx}, cl))
	})
}
