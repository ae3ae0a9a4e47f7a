package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	opCreateLoan     = "create_loan"
	opRegisterReturn = "register_return"
)

// CreateLoan issues wardrobe units to a student. Either every line is
// reserved and recorded or nothing changes.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		s.metrics.OperationFailures.WithLabelValues(opCreateLoan, reason(err)).Inc()
		return 0, err
	}

	loan := model.Loan{
		TeacherID: req.TeacherID,
		GroupID:   req.GroupID,
		StudentID: req.StudentID,
		IssuedAt:  s.now().UTC(),
		Notes:     req.Notes,
		Status:    model.StatusOpen,
	}
	if req.ExpectedReturnDate != nil {
		d := req.ExpectedReturnDate.Time
		loan.ExpectedReturnDate = &d
	}

	var lines []model.LoanLineItem
	err := s.repo.InTx(ctx, func(tx repository.LoanTx) error {
		if _, err := tx.GetTeacher(ctx, req.TeacherID); err != nil {
			return err
		}
		if _, err := tx.GetGroup(ctx, req.GroupID); err != nil {
			return err
		}
		if _, err := tx.GetStudent(ctx, req.StudentID); err != nil {
			return err
		}

		id, err := tx.InsertLoan(ctx, loan)
		if err != nil {
			return err
		}
		loan.ID = id

		lines = lines[:0]
		for _, it := range req.Items {
			if _, err := tx.LockWardrobeItem(ctx, it.WardrobeItemID); err != nil {
				return err
			}
			if _, err := tx.Reserve(ctx, it.WardrobeItemID, it.Quantity); err != nil {
				return err
			}
			line := model.LoanLineItem{
				LoanID:         loan.ID,
				WardrobeItemID: it.WardrobeItemID,
				Borrowed:       it.Quantity,
			}
			if line.ID, err = tx.InsertLineItem(ctx, line); err != nil {
				return err
			}
			lines = append(lines, line)
		}
		return nil
	})
	if err != nil {
		s.metrics.OperationFailures.WithLabelValues(opCreateLoan, reason(err)).Inc()
		s.log.Info("CreateLoan rolled back",
			zap.Int64("teacher_id", req.TeacherID),
			zap.Int64("student_id", req.StudentID),
			zap.Error(err))
		return 0, err
	}

	s.metrics.LoansCreated.Inc()
	for _, l := range lines {
		s.metrics.UnitsReserved.Add(float64(l.Borrowed))
	}
	s.publish(ctx, model.EventLoanCreated, loan.ID, req.TeacherID, model.StatusOpen, lines)
	return loan.ID, nil
}

// RegisterReturn applies movements to lines of one loan and re-derives its
// status. Returned units go back to stock; lost and damaged ones do not.
func (s *Service) RegisterReturn(ctx context.Context, teacherID int64, req model.RegisterReturnRequest) (model.Status, error) {
	if err := req.Validate(); err != nil {
		s.metrics.OperationFailures.WithLabelValues(opRegisterReturn, reason(err)).Inc()
		return "", err
	}

	var (
		status   model.Status
		lines    []model.LoanLineItem
		released int
	)
	err := s.repo.InTx(ctx, func(tx repository.LoanTx) error {
		loan, err := tx.LockLoan(ctx, req.LoanID)
		if err != nil {
			return err
		}

		released = 0
		for _, m := range req.Items {
			line, err := tx.LockLineItem(ctx, m.LineItemID)
			if errors.Is(err, errs.ErrNotFound) {
				return errors.Wrapf(errs.ErrInvalidLineItem, "line item %d", m.LineItemID)
			}
			if err != nil {
				return err
			}
			if line.LoanID != loan.ID {
				return errors.Wrapf(errs.ErrInvalidLineItem, "line item %d: loan %d", m.LineItemID, loan.ID)
			}
			if m.IsZero() {
				continue
			}
			if _, err := line.Apply(m); err != nil {
				return err
			}
			if _, err := tx.ApplyMovement(ctx, m); err != nil {
				return err
			}
			if m.Returned > 0 {
				if _, err := tx.Release(ctx, line.WardrobeItemID, m.Returned); err != nil {
					return err
				}
				released += m.Returned
			}
		}

		if lines, err = tx.ListLineItems(ctx, loan.ID); err != nil {
			return err
		}
		var actualReturnAt *time.Time
		status, actualReturnAt, err = model.NextLifecycle(loan, lines, s.now())
		if err != nil {
			return err
		}
		return tx.UpdateLoanStatus(ctx, loan.ID, status, actualReturnAt)
	})
	if err != nil {
		s.metrics.OperationFailures.WithLabelValues(opRegisterReturn, reason(err)).Inc()
		s.log.Info("RegisterReturn rolled back", zap.Int64("loan_id", req.LoanID), zap.Error(err))
		return "", err
	}

	s.metrics.ReturnsRegistered.WithLabelValues(string(status)).Inc()
	s.metrics.UnitsReleased.Add(float64(released))
	s.publish(ctx, model.EventReturnRegistered, req.LoanID, teacherID, status, lines)
	return status, nil
}

func (s *Service) GetLoanWithLines(ctx context.Context, loanID int64) (model.LoanDetails, error) {
	if loanID <= 0 {
		return model.LoanDetails{}, errors.Wrap(errs.ErrValidation, "loan id is required")
	}
	return s.repo.GetLoanWithLines(ctx, loanID)
}

func (s *Service) ListLoans(ctx context.Context, page, size int) (model.ListLoans, error) {
	return s.repo.ListLoans(ctx, page, size)
}

type eventPayload struct {
	Lines []model.LoanLineItem `json:"lines"`
}

// publish hands the committed change to the event publisher. Failures are
// logged only: the loan is already committed.
func (s *Service) publish(ctx context.Context, typ model.EventType, loanID, teacherID int64, status model.Status, lines []model.LoanLineItem) {
	payload, err := json.Marshal(eventPayload{Lines: lines})
	if err != nil {
		s.log.Error("publish json.Marshal", zap.Error(err))
		return
	}
	ev := model.LoanEvent{
		EventUID:   uuid.NewString(),
		LoanID:     loanID,
		Type:       typ,
		TeacherID:  teacherID,
		Status:     status,
		Payload:    payload,
		OccurredAt: s.now().UTC(),
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.metrics.EventsPublished.WithLabelValues("error").Inc()
		s.log.Warn("publish loan event",
			zap.String("type", string(typ)),
			zap.Int64("loan_id", loanID),
			zap.Error(err))
		return
	}
	s.metrics.EventsPublished.WithLabelValues("ok").Inc()
}
