package repository

import (
	"context"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	sq "github.com/Masterminds/squirrel"
)

type ReportRepository interface {
	OutstandingByStudent(ctx context.Context, groupID int64) ([]model.OutstandingByStudent, error)
	InventoryByGroup(ctx context.Context) ([]model.InventoryByGroup, error)
	InventoryTotals(ctx context.Context) (model.InventoryTotals, error)
}

const pendingExpr = `d.borrowed_quantity - (d.returned_quantity + d.lost_quantity + d.damaged_quantity)`

var notClosed = sq.Eq{"l.status": []string{string(model.StatusOpen), string(model.StatusPartial)}}

func (r *repository) OutstandingByStudent(ctx context.Context, groupID int64) ([]model.OutstandingByStudent, error) {
	q := qb.Select(
		"g.id as group_id", "g.name as group_name",
		"s.id as student_id", "s.name as student_name",
		"l.id as loan_id", "l.status", "l.issued_at", "l.expected_return_date",
		"w.id as wardrobe_item_id", "w.name as wardrobe_item_name",
		"d.borrowed_quantity", "d.returned_quantity", "d.lost_quantity", "d.damaged_quantity",
		pendingExpr+" as outstanding").
		From(loansTableName + " l").
		Join(groupsTableName + " g on g.id = l.group_id").
		Join(studentsTableName + " s on s.id = l.student_id").
		Join(loanLineItemsTableName + " d on d.loan_id = l.id").
		Join(wardrobeItemsTableName + " w on w.id = d.wardrobe_item_id").
		Where(notClosed).
		OrderBy("g.id", "s.name", "l.id desc", "w.name asc")
	if groupID > 0 {
		q = q.Where(sq.Eq{"l.group_id": groupID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows := make([]model.OutstandingByStudent, 0)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) InventoryByGroup(ctx context.Context) ([]model.InventoryByGroup, error) {
	query, args, err := qb.Select(
		"g.id as group_id", "g.name as group_name",
		"w.id as wardrobe_item_id", "w.name as wardrobe_item_name",
		"sum("+pendingExpr+") as lent").
		From(loansTableName + " l").
		Join(groupsTableName + " g on g.id = l.group_id").
		Join(loanLineItemsTableName + " d on d.loan_id = l.id").
		Join(wardrobeItemsTableName + " w on w.id = d.wardrobe_item_id").
		Where(notClosed).
		GroupBy("g.id", "g.name", "w.id", "w.name").
		Having("sum(" + pendingExpr + ") > 0").
		OrderBy("g.id", "lent desc", "w.name asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows := make([]model.InventoryByGroup, 0)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) InventoryTotals(ctx context.Context) (model.InventoryTotals, error) {
	const q = `
select
    (select coalesce(sum(total_quantity), 0) from wardrobe_items)     as total,
    (select coalesce(sum(available_quantity), 0) from wardrobe_items) as available,
    (select coalesce(sum(d.borrowed_quantity - (d.returned_quantity + d.lost_quantity + d.damaged_quantity)), 0)
       from loans l
       join loan_line_items d on d.loan_id = l.id
      where l.status in ('OPEN', 'PARTIAL'))                          as lent`

	var totals model.InventoryTotals
	if err := r.db.GetContext(ctx, &totals, q); err != nil {
		return model.InventoryTotals{}, err
	}
	return totals, nil
}
