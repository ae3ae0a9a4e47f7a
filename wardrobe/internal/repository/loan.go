package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

const outstandingExpr = `coalesce(sum(d.borrowed_quantity - (d.returned_quantity + d.lost_quantity + d.damaged_quantity)), 0)`

func (r *repository) ListLoans(ctx context.Context, page, size int) (model.ListLoans, error) {
	q := qb.Select(
		"l.id", "l.teacher_id", "l.group_id", "l.student_id", "l.issued_at",
		"l.expected_return_date", "l.actual_return_at", "l.notes", "l.status",
		"t.name as teacher_name", "g.name as group_name", "s.name as student_name",
		outstandingExpr+" as outstanding").
		From(loansTableName + " l").
		Join(fmt.Sprintf("%s t on t.id = l.teacher_id", teachersTableName)).
		Join(fmt.Sprintf("%s g on g.id = l.group_id", groupsTableName)).
		Join(fmt.Sprintf("%s s on s.id = l.student_id", studentsTableName)).
		LeftJoin(fmt.Sprintf("%s d on d.loan_id = l.id", loanLineItemsTableName)).
		GroupBy("l.id", "t.name", "g.name", "s.name").
		OrderBy("l.id desc")
	q = paginate(q, page, size)

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListLoans{}, err
	}
	r.log.Debug("ListLoans", zap.String("query", query), zap.Any("args", args))

	loans := make([]model.LoanSummary, 0)
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return model.ListLoans{}, err
	}

	countQuery, countArgs, err := qb.Select("count(*)").From(loansTableName).ToSql()
	if err != nil {
		return model.ListLoans{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return model.ListLoans{}, err
	}
	return model.ListLoans{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: loans,
	}, nil
}

// GetLoanWithLines is a read outside any transaction; it may not reflect an
// in-flight loan operation.
func (r *repository) GetLoanWithLines(ctx context.Context, loanID int64) (model.LoanDetails, error) {
	q, args, err := qb.Select("id", "teacher_id", "group_id", "student_id", "issued_at",
		"expected_return_date", "actual_return_at", "notes", "status").
		From(loansTableName).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return model.LoanDetails{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, args...); err != nil {
		return model.LoanDetails{}, mapErr(err, "loan %d", loanID)
	}

	q, args, err = qb.Select(lineItemColumns...).
		From(loanLineItemsTableName).
		Where(sq.Eq{"loan_id": loanID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return model.LoanDetails{}, err
	}
	var lines []model.LoanLineItem
	if err := r.db.SelectContext(ctx, &lines, q, args...); err != nil {
		return model.LoanDetails{}, err
	}

	items, err := r.wardrobeItemsByID(ctx, lines)
	if err != nil {
		return model.LoanDetails{}, err
	}
	details := model.LoanDetails{Loan: loan, Lines: make([]model.LoanLineDetail, 0, len(lines))}
	for _, l := range lines {
		d := model.LoanLineDetail{LoanLineItem: l}
		if it, ok := items[l.WardrobeItemID]; ok {
			it := it
			d.WardrobeItem = &it
		}
		details.Lines = append(details.Lines, d)
	}
	return details, nil
}

func (r *repository) wardrobeItemsByID(ctx context.Context, lines []model.LoanLineItem) (map[int64]model.WardrobeItem, error) {
	if len(lines) == 0 {
		return map[int64]model.WardrobeItem{}, nil
	}
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.WardrobeItemID)
	}
	q, args, err := qb.Select("id", "name", "type", "size", "total_quantity", "available_quantity", "condition").
		From(wardrobeItemsTableName).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.WardrobeItem
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	byID := make(map[int64]model.WardrobeItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}
