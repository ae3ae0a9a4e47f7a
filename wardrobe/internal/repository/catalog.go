package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	q, args, err := qb.Select("id", "name", "email", "phone", "role", "active").
		From(teachersTableName).
		OrderBy("id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	teachers := make([]model.Teacher, 0)
	if err := r.db.SelectContext(ctx, &teachers, q, args...); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *repository) GetTeacherByEmail(ctx context.Context, email string) (model.Teacher, error) {
	q, args, err := qb.Select("id", "name", "email", "password_hash", "phone", "role", "active").
		From(teachersTableName).
		Where(sq.Eq{"lower(email)": strings.ToLower(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Teacher{}, err
	}
	var teacher model.Teacher
	if err := r.db.GetContext(ctx, &teacher, q, args...); err != nil {
		return model.Teacher{}, mapErr(err, "teacher %s", email)
	}
	return teacher, nil
}

func (r *repository) CountTeachers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `select count(*) from teachers`); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) CreateTeacher(ctx context.Context, t model.Teacher) (model.Teacher, error) {
	q, args, err := qb.Insert(teachersTableName).
		Columns("name", "email", "password_hash", "phone", "role", "active").
		Values(t.Name, strings.ToLower(t.Email), t.PasswordHash, t.Phone, t.Role, true).
		Suffix("returning id, name, email, password_hash, phone, role, active").
		ToSql()
	if err != nil {
		return model.Teacher{}, err
	}
	var created model.Teacher
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateTeacher", zap.String("q", q))
		return model.Teacher{}, mapErr(err, "teacher %s", t.Email)
	}
	return created, nil
}

func (r *repository) SetTeacherActive(ctx context.Context, id int64, active bool) error {
	return r.setActive(ctx, teachersTableName, "teacher", id, active)
}

func (r *repository) SetTeacherPassword(ctx context.Context, email, passwordHash string) error {
	q, args, err := qb.Update(teachersTableName).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"lower(email)": strings.ToLower(email)}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrapf(errs.ErrNotFound, "teacher %s", email)
	}
	return nil
}

func (r *repository) ListGroups(ctx context.Context) ([]model.Group, error) {
	q, args, err := qb.Select("id", "name", "responsible_teacher_id", "active").
		From(groupsTableName).
		OrderBy("id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	groups := make([]model.Group, 0)
	if err := r.db.SelectContext(ctx, &groups, q, args...); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *repository) CreateGroup(ctx context.Context, req model.CreateGroupRequest) (model.Group, error) {
	q, args, err := qb.Insert(groupsTableName).
		Columns("name", "responsible_teacher_id", "active").
		Values(req.Name, req.ResponsibleTeacherID, true).
		Suffix("returning id, name, responsible_teacher_id, active").
		ToSql()
	if err != nil {
		return model.Group{}, err
	}
	var group model.Group
	if err := r.db.GetContext(ctx, &group, q, args...); err != nil {
		return model.Group{}, mapErr(err, "group %s", req.Name)
	}
	return group, nil
}

func (r *repository) SetGroupActive(ctx context.Context, id int64, active bool) error {
	return r.setActive(ctx, groupsTableName, "group", id, active)
}

func (r *repository) ListStudents(ctx context.Context, groupID int64) ([]model.Student, error) {
	q := qb.Select("id", "group_id", "name", "active").
		From(studentsTableName).
		OrderBy("id desc")
	if groupID > 0 {
		q = q.Where(sq.Eq{"group_id": groupID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	students := make([]model.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *repository) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error) {
	q, args, err := qb.Insert(studentsTableName).
		Columns("group_id", "name", "active").
		Values(req.GroupID, req.Name, true).
		Suffix("returning id, group_id, name, active").
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	var student model.Student
	if err := r.db.GetContext(ctx, &student, q, args...); err != nil {
		return model.Student{}, mapErr(err, "student of group %d", req.GroupID)
	}
	return student, nil
}

func (r *repository) SetStudentActive(ctx context.Context, id int64, active bool) (model.Student, error) {
	q, args, err := qb.Update(studentsTableName).
		Set("active", active).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, group_id, name, active").
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	var student model.Student
	if err := r.db.GetContext(ctx, &student, q, args...); err != nil {
		return model.Student{}, mapErr(err, "student %d", id)
	}
	return student, nil
}

func (r *repository) ListWardrobeItems(ctx context.Context) ([]model.WardrobeItem, error) {
	q, args, err := qb.Select("id", "name", "type", "size", "total_quantity", "available_quantity", "condition").
		From(wardrobeItemsTableName).
		OrderBy("id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.WardrobeItem, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateWardrobeItem starts with the whole stock available.
func (r *repository) CreateWardrobeItem(ctx context.Context, req model.CreateWardrobeItemRequest) (model.WardrobeItem, error) {
	total := 0
	if req.TotalQuantity != nil {
		total = *req.TotalQuantity
	}
	q, args, err := qb.Insert(wardrobeItemsTableName).
		Columns("name", "type", "size", "total_quantity", "available_quantity", "condition").
		Values(req.Name, req.Type, req.Size, total, total, model.ConditionActive).
		Suffix("returning id, name, type, size, total_quantity, available_quantity, condition").
		ToSql()
	if err != nil {
		return model.WardrobeItem{}, err
	}
	var item model.WardrobeItem
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		return model.WardrobeItem{}, mapErr(err, "wardrobe item %s", req.Name)
	}
	return item, nil
}

func (r *repository) setActive(ctx context.Context, table, what string, id int64, active bool) error {
	q, args, err := qb.Update(table).
		Set("active", active).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return mapErr(err, "%s %d", what, id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrapf(errs.ErrNotFound, "%s %d", what, id)
	}
	return nil
}
