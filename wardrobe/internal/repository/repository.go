package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	CatalogRepository
	LoanReader
	ReportRepository
	EventRepository

	// InTx runs fn inside one database transaction. Returning an error from fn
	// rolls back every write made through tx.
	InTx(ctx context.Context, fn func(tx LoanTx) error) error
}

type CatalogRepository interface {
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	GetTeacherByEmail(ctx context.Context, email string) (model.Teacher, error)
	CountTeachers(ctx context.Context) (int, error)
	CreateTeacher(ctx context.Context, t model.Teacher) (model.Teacher, error)
	SetTeacherActive(ctx context.Context, id int64, active bool) error
	SetTeacherPassword(ctx context.Context, email, passwordHash string) error

	ListGroups(ctx context.Context) ([]model.Group, error)
	CreateGroup(ctx context.Context, req model.CreateGroupRequest) (model.Group, error)
	SetGroupActive(ctx context.Context, id int64, active bool) error

	ListStudents(ctx context.Context, groupID int64) ([]model.Student, error)
	CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error)
	SetStudentActive(ctx context.Context, id int64, active bool) (model.Student, error)

	ListWardrobeItems(ctx context.Context) ([]model.WardrobeItem, error)
	CreateWardrobeItem(ctx context.Context, req model.CreateWardrobeItemRequest) (model.WardrobeItem, error)
}

type LoanReader interface {
	ListLoans(ctx context.Context, page, size int) (model.ListLoans, error)
	GetLoanWithLines(ctx context.Context, loanID int64) (model.LoanDetails, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	teachersTableName      = `teachers`
	groupsTableName        = `groups`
	studentsTableName      = `students`
	wardrobeItemsTableName = `wardrobe_items`
	loansTableName         = `loans`
	loanLineItemsTableName = `loan_line_items`
	loanEventsTableName    = `loan_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) InTx(ctx context.Context, fn func(tx LoanTx) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "BeginTxx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("tx.Rollback", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(&loanTx{tx: tx, log: r.log}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "tx.Commit")
	}
	return nil
}

// mapErr turns driver errors into the domain taxonomy.
func mapErr(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(errs.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrapf(errs.ErrConflict, "%s: %s", what, pgErr.Detail)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrapf(errs.ErrNotFound, "%s: %s", what, pgErr.Detail)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
			return errors.Wrapf(errs.ErrValidation, "%s: %s", what, pgErr.Message)
		}
	}
	return errors.Wrap(err, what)
}

func paginate(q sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	return q
}
