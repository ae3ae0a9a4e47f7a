package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LoanTx is the only write path for stock quantities, line-item outcomes and
// loan status. It exists solely inside Repository.InTx.
type LoanTx interface {
	GetTeacher(ctx context.Context, id int64) (model.Teacher, error)
	GetGroup(ctx context.Context, id int64) (model.Group, error)
	GetStudent(ctx context.Context, id int64) (model.Student, error)

	InsertLoan(ctx context.Context, loan model.Loan) (int64, error)
	LockLoan(ctx context.Context, id int64) (model.Loan, error)
	UpdateLoanStatus(ctx context.Context, id int64, status model.Status, actualReturnAt *time.Time) error

	// Stock ledger.
	LockWardrobeItem(ctx context.Context, id int64) (model.WardrobeItem, error)
	Reserve(ctx context.Context, itemID int64, qty int) (int, error)
	Release(ctx context.Context, itemID int64, qty int) (int, error)

	// Line-item accounting.
	InsertLineItem(ctx context.Context, line model.LoanLineItem) (int64, error)
	LockLineItem(ctx context.Context, id int64) (model.LoanLineItem, error)
	ApplyMovement(ctx context.Context, m model.Movement) (model.LoanLineItem, error)
	ListLineItems(ctx context.Context, loanID int64) ([]model.LoanLineItem, error)
}

type loanTx struct {
	tx  *sqlx.Tx
	log *zap.Logger
}

var _ LoanTx = (*loanTx)(nil)

func (t *loanTx) GetTeacher(ctx context.Context, id int64) (model.Teacher, error) {
	q, args, err := qb.Select("id", "name", "email", "password_hash", "phone", "role", "active").
		From(teachersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Teacher{}, err
	}
	var teacher model.Teacher
	if err := t.tx.GetContext(ctx, &teacher, q, args...); err != nil {
		return model.Teacher{}, mapErr(err, "teacher %d", id)
	}
	return teacher, nil
}

func (t *loanTx) GetGroup(ctx context.Context, id int64) (model.Group, error) {
	q, args, err := qb.Select("id", "name", "responsible_teacher_id", "active").
		From(groupsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Group{}, err
	}
	var group model.Group
	if err := t.tx.GetContext(ctx, &group, q, args...); err != nil {
		return model.Group{}, mapErr(err, "group %d", id)
	}
	return group, nil
}

func (t *loanTx) GetStudent(ctx context.Context, id int64) (model.Student, error) {
	q, args, err := qb.Select("id", "group_id", "name", "active").
		From(studentsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	var student model.Student
	if err := t.tx.GetContext(ctx, &student, q, args...); err != nil {
		return model.Student{}, mapErr(err, "student %d", id)
	}
	return student, nil
}

func (t *loanTx) InsertLoan(ctx context.Context, loan model.Loan) (int64, error) {
	q, args, err := qb.Insert(loansTableName).
		Columns("teacher_id", "group_id", "student_id", "issued_at", "expected_return_date", "notes", "status").
		Values(loan.TeacherID, loan.GroupID, loan.StudentID, loan.IssuedAt, loan.ExpectedReturnDate, loan.Notes, model.StatusOpen).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := t.tx.GetContext(ctx, &id, q, args...); err != nil {
		t.log.Error("InsertLoan", zap.String("q", q), zap.Any("args", args))
		return 0, mapErr(err, "insert loan")
	}
	return id, nil
}

func (t *loanTx) LockLoan(ctx context.Context, id int64) (model.Loan, error) {
	q, args, err := qb.Select("id", "teacher_id", "group_id", "student_id", "issued_at",
		"expected_return_date", "actual_return_at", "notes", "status").
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := t.tx.GetContext(ctx, &loan, q, args...); err != nil {
		return model.Loan{}, mapErr(err, "loan %d", id)
	}
	return loan, nil
}

func (t *loanTx) UpdateLoanStatus(ctx context.Context, id int64, status model.Status, actualReturnAt *time.Time) error {
	q, args, err := qb.Update(loansTableName).
		Set("status", status).
		Set("actual_return_at", actualReturnAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := t.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return mapErr(err, "update loan %d status", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrapf(errs.ErrNotFound, "loan %d", id)
	}
	return nil
}

func (t *loanTx) LockWardrobeItem(ctx context.Context, id int64) (model.WardrobeItem, error) {
	q, args, err := qb.Select("id", "name", "type", "size", "total_quantity", "available_quantity", "condition").
		From(wardrobeItemsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.WardrobeItem{}, err
	}
	var item model.WardrobeItem
	if err := t.tx.GetContext(ctx, &item, q, args...); err != nil {
		return model.WardrobeItem{}, mapErr(err, "wardrobe item %d", id)
	}
	return item, nil
}

// Reserve decrements available stock in a single guarded statement and
// returns the new available quantity.
func (t *loanTx) Reserve(ctx context.Context, itemID int64, qty int) (int, error) {
	const q = `
update wardrobe_items
    set available_quantity = available_quantity - $2
where id = $1 and available_quantity >= $2
returning available_quantity`

	var available int
	err := t.tx.QueryRowxContext(ctx, q, itemID, qty).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		cur, lookupErr := t.available(ctx, itemID)
		if lookupErr != nil {
			return 0, lookupErr
		}
		return cur, errors.Wrapf(errs.ErrInsufficientStock,
			"wardrobe item %d: requested %d, available %d", itemID, qty, cur)
	}
	if err != nil {
		return 0, mapErr(err, "reserve wardrobe item %d", itemID)
	}
	return available, nil
}

// Release puts returned units back; available never exceeds total.
func (t *loanTx) Release(ctx context.Context, itemID int64, qty int) (int, error) {
	const q = `
update wardrobe_items
    set available_quantity = available_quantity + $2
where id = $1 and available_quantity + $2 <= total_quantity
returning available_quantity`

	var available int
	err := t.tx.QueryRowxContext(ctx, q, itemID, qty).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		cur, lookupErr := t.available(ctx, itemID)
		if lookupErr != nil {
			return 0, lookupErr
		}
		return cur, errors.Wrapf(errs.ErrStockInvariant,
			"wardrobe item %d: release %d over available %d", itemID, qty, cur)
	}
	if err != nil {
		return 0, mapErr(err, "release wardrobe item %d", itemID)
	}
	return available, nil
}

func (t *loanTx) available(ctx context.Context, itemID int64) (int, error) {
	var available int
	err := t.tx.GetContext(ctx, &available, `select available_quantity from wardrobe_items where id = $1`, itemID)
	if err != nil {
		return 0, mapErr(err, "wardrobe item %d", itemID)
	}
	return available, nil
}

func (t *loanTx) InsertLineItem(ctx context.Context, line model.LoanLineItem) (int64, error) {
	q, args, err := qb.Insert(loanLineItemsTableName).
		Columns("loan_id", "wardrobe_item_id", "borrowed_quantity",
			"returned_quantity", "lost_quantity", "damaged_quantity").
		Values(line.LoanID, line.WardrobeItemID, line.Borrowed, 0, 0, 0).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := t.tx.GetContext(ctx, &id, q, args...); err != nil {
		return 0, mapErr(err, "insert line item for wardrobe item %d", line.WardrobeItemID)
	}
	return id, nil
}

var lineItemColumns = []string{"id", "loan_id", "wardrobe_item_id", "borrowed_quantity",
	"returned_quantity", "lost_quantity", "damaged_quantity"}

func (t *loanTx) LockLineItem(ctx context.Context, id int64) (model.LoanLineItem, error) {
	q, args, err := qb.Select(lineItemColumns...).
		From(loanLineItemsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.LoanLineItem{}, err
	}
	var line model.LoanLineItem
	if err := t.tx.GetContext(ctx, &line, q, args...); err != nil {
		return model.LoanLineItem{}, mapErr(err, "line item %d", id)
	}
	return line, nil
}

// ApplyMovement increments the outcome counters only while
// returned + lost + damaged stays within borrowed.
func (t *loanTx) ApplyMovement(ctx context.Context, m model.Movement) (model.LoanLineItem, error) {
	const q = `
update loan_line_items
    set returned_quantity = returned_quantity + $2,
        lost_quantity     = lost_quantity + $3,
        damaged_quantity  = damaged_quantity + $4
where id = $1
  and returned_quantity + lost_quantity + damaged_quantity + $2 + $3 + $4 <= borrowed_quantity
returning id, loan_id, wardrobe_item_id, borrowed_quantity, returned_quantity, lost_quantity, damaged_quantity`

	var line model.LoanLineItem
	err := t.tx.QueryRowxContext(ctx, q, m.LineItemID, m.Returned, m.Lost, m.Damaged).StructScan(&line)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LoanLineItem{}, errors.Wrapf(errs.ErrOverReturn, "line item %d", m.LineItemID)
	}
	if err != nil {
		return model.LoanLineItem{}, mapErr(err, "apply movement to line item %d", m.LineItemID)
	}
	return line, nil
}

func (t *loanTx) ListLineItems(ctx context.Context, loanID int64) ([]model.LoanLineItem, error) {
	q, args, err := qb.Select(lineItemColumns...).
		From(loanLineItemsTableName).
		Where(sq.Eq{"loan_id": loanID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var lines []model.LoanLineItem
	if err := t.tx.SelectContext(ctx, &lines, q, args...); err != nil {
		return nil, mapErr(err, "line items of loan %d", loanID)
	}
	return lines, nil
}
