package model

import (
	"math"
	"strings"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/pkg/errors"
)

type Status string

// MaxQuantity is the largest count a stock or line column can hold.
const MaxQuantity = math.MaxInt32

const (
	StatusOpen    Status = "OPEN"
	StatusPartial Status = "PARTIAL"
	StatusClosed  Status = "CLOSED"
)

func (s Status) rank() int {
	switch s {
	case StatusOpen:
		return 0
	case StatusPartial:
		return 1
	case StatusClosed:
		return 2
	}
	return -1
}

// Date is a calendar day in the yyyy-mm-dd form.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		// full timestamps from the form are accepted and truncated to the day
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return errors.Wrapf(errs.ErrValidation, "date %q must be yyyy-mm-dd", s)
		}
	}
	y, m, dd := t.Date()
	d.Time = time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type Loan struct {
	ID                 int64      `json:"id" db:"id"`
	TeacherID          int64      `json:"teacherId" db:"teacher_id"`
	GroupID            int64      `json:"groupId" db:"group_id"`
	StudentID          int64      `json:"studentId" db:"student_id"`
	IssuedAt           time.Time  `json:"issuedAt" db:"issued_at"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate,omitempty" db:"expected_return_date"`
	ActualReturnAt     *time.Time `json:"actualReturnAt,omitempty" db:"actual_return_at"`
	Notes              *string    `json:"notes,omitempty" db:"notes"`
	Status             Status     `json:"status" db:"status"`
}

// LoanLineItem outcome counters only grow, and never past Borrowed.
type LoanLineItem struct {
	ID             int64 `json:"id" db:"id"`
	LoanID         int64 `json:"loanId" db:"loan_id"`
	WardrobeItemID int64 `json:"wardrobeItemId" db:"wardrobe_item_id"`
	Borrowed       int   `json:"borrowed" db:"borrowed_quantity"`
	Returned       int   `json:"returned" db:"returned_quantity"`
	Lost           int   `json:"lost" db:"lost_quantity"`
	Damaged        int   `json:"damaged" db:"damaged_quantity"`
}

func (l LoanLineItem) Processed() int {
	return l.Returned + l.Lost + l.Damaged
}

func (l LoanLineItem) Outstanding() int {
	return l.Borrowed - l.Processed()
}

func (l LoanLineItem) FullyProcessed() bool {
	return l.Processed() == l.Borrowed
}

type Movement struct {
	LineItemID int64 `json:"lineItemId" validate:"required,gt=0"`
	Returned   int   `json:"returned" validate:"gte=0"`
	Lost       int   `json:"lost" validate:"gte=0"`
	Damaged    int   `json:"damaged" validate:"gte=0"`
}

func (m Movement) Total() int {
	return m.Returned + m.Lost + m.Damaged
}

func (m Movement) IsZero() bool {
	return m.Total() == 0
}

// Apply adds the movement to the line. It fails with ErrOverReturn when the
// processed quantity would exceed the borrowed one; the receiver is not modified.
func (l LoanLineItem) Apply(m Movement) (LoanLineItem, error) {
	if m.Returned < 0 || m.Lost < 0 || m.Damaged < 0 {
		return l, errors.Wrapf(errs.ErrValidation, "line item %d: quantities must be >= 0", l.ID)
	}
	// each count is bounded first so the sum below cannot overflow
	out := l.Outstanding()
	if m.Returned > out || m.Lost > out || m.Damaged > out || m.Total() > out {
		return l, errors.Wrapf(errs.ErrOverReturn,
			"line item %d: borrowed %d, already processed %d, incoming %d",
			l.ID, l.Borrowed, l.Processed(), m.Total())
	}
	l.Returned += m.Returned
	l.Lost += m.Lost
	l.Damaged += m.Damaged
	return l, nil
}

// DeriveStatus computes a loan status from the full set of its line items.
// An empty set is OPEN: nothing was ever processed.
func DeriveStatus(lines []LoanLineItem) Status {
	if len(lines) == 0 {
		return StatusOpen
	}
	allClosed, anyProcessed := true, false
	for _, l := range lines {
		if !l.FullyProcessed() {
			allClosed = false
		}
		if l.Processed() > 0 {
			anyProcessed = true
		}
	}
	switch {
	case allClosed:
		return StatusClosed
	case anyProcessed:
		return StatusPartial
	default:
		return StatusOpen
	}
}

// NextLifecycle re-derives status and actual-return timestamp for a loan whose
// lines were just updated. A loan that was already CLOSED keeps its timestamp.
func NextLifecycle(loan Loan, lines []LoanLineItem, now time.Time) (Status, *time.Time, error) {
	next := DeriveStatus(lines)
	if next.rank() < loan.Status.rank() {
		return loan.Status, loan.ActualReturnAt, errors.Wrapf(errs.ErrStatusRegression,
			"loan %d: %s -> %s", loan.ID, loan.Status, next)
	}
	if next != StatusClosed {
		return next, nil, nil
	}
	if loan.Status == StatusClosed && loan.ActualReturnAt != nil {
		return next, loan.ActualReturnAt, nil
	}
	closedAt := now.UTC()
	return next, &closedAt, nil
}

type LoanItemRequest struct {
	WardrobeItemID int64 `json:"wardrobeItemId" validate:"required,gt=0"`
	Quantity       int   `json:"quantity" validate:"required,gt=0"`
}

type CreateLoanRequest struct {
	TeacherID          int64             `json:"-"`
	GroupID            int64             `json:"groupId" validate:"required,gt=0"`
	StudentID          int64             `json:"studentId" validate:"required,gt=0"`
	ExpectedReturnDate *Date             `json:"expectedReturnDate"`
	Notes              *string           `json:"notes" validate:"omitempty,max=500"`
	Items              []LoanItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r CreateLoanRequest) Validate() error {
	switch {
	case r.TeacherID <= 0:
		return errors.Wrap(errs.ErrValidation, "teacher is required")
	case r.GroupID <= 0 || r.StudentID <= 0 || len(r.Items) == 0:
		return errors.Wrap(errs.ErrValidation, "groupId, studentId and items are required")
	}
	for i, it := range r.Items {
		if it.WardrobeItemID <= 0 || it.Quantity <= 0 {
			return errors.Wrapf(errs.ErrValidation, "item %d: wardrobeItemId and quantity > 0 are required", i)
		}
		if it.Quantity > MaxQuantity {
			return errors.Wrapf(errs.ErrValidation, "item %d: quantity must be <= %d", i, MaxQuantity)
		}
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		return errors.Wrap(errs.ErrValidation, "notes exceed 500 characters")
	}
	return nil
}

type CreateLoanResponse struct {
	LoanID int64 `json:"loanId"`
}

type RegisterReturnRequest struct {
	LoanID int64      `json:"-"`
	Items  []Movement `json:"items" validate:"required,min=1,dive"`
}

func (r RegisterReturnRequest) Validate() error {
	if r.LoanID <= 0 {
		return errors.Wrap(errs.ErrValidation, "loan id is required")
	}
	if len(r.Items) == 0 {
		return errors.Wrap(errs.ErrValidation, "items are required")
	}
	for i, m := range r.Items {
		if m.LineItemID <= 0 {
			return errors.Wrapf(errs.ErrValidation, "item %d: lineItemId is required", i)
		}
		if m.Returned < 0 || m.Lost < 0 || m.Damaged < 0 {
			return errors.Wrapf(errs.ErrValidation, "item %d: quantities must be >= 0", i)
		}
		if m.Returned > MaxQuantity || m.Lost > MaxQuantity || m.Damaged > MaxQuantity {
			return errors.Wrapf(errs.ErrValidation, "item %d: quantities must be <= %d", i, MaxQuantity)
		}
	}
	return nil
}

type RegisterReturnResponse struct {
	Status Status `json:"status"`
}

type LoanLineDetail struct {
	LoanLineItem `json:",inline"`
	WardrobeItem *WardrobeItem `json:"wardrobeItem"`
}

type LoanDetails struct {
	Loan  Loan             `json:"loan"`
	Lines []LoanLineDetail `json:"lines"`
}

type LoanSummary struct {
	Loan        `json:",inline"`
	TeacherName string `json:"teacher" db:"teacher_name"`
	GroupName   string `json:"group" db:"group_name"`
	StudentName string `json:"student" db:"student_name"`
	Outstanding int    `json:"outstanding" db:"outstanding"`
}

type ListLoans struct {
	Paging `json:",inline"`
	Items  []LoanSummary `json:"items"`
}
