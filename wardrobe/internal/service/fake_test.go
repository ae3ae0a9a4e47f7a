package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/repository"
	"github.com/pkg/errors"
)

// memState is everything InTx snapshots and restores.
type memState struct {
	teachers map[int64]model.Teacher
	groups   map[int64]model.Group
	students map[int64]model.Student
	items    map[int64]model.WardrobeItem
	loans    map[int64]model.Loan
	lines    map[int64]model.LoanLineItem
	events   map[string]model.LoanEvent
	seq      int64
}

func (s memState) clone() memState {
	c := memState{
		teachers: make(map[int64]model.Teacher, len(s.teachers)),
		groups:   make(map[int64]model.Group, len(s.groups)),
		students: make(map[int64]model.Student, len(s.students)),
		items:    make(map[int64]model.WardrobeItem, len(s.items)),
		loans:    make(map[int64]model.Loan, len(s.loans)),
		lines:    make(map[int64]model.LoanLineItem, len(s.lines)),
		events:   make(map[string]model.LoanEvent, len(s.events)),
		seq:      s.seq,
	}
	for k, v := range s.teachers {
		c.teachers[k] = v
	}
	for k, v := range s.groups {
		c.groups[k] = v
	}
	for k, v := range s.students {
		c.students[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.loans {
		c.loans[k] = v
	}
	for k, v := range s.lines {
		c.lines[k] = v
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	return c
}

type memRepo struct {
	mu sync.Mutex
	st memState
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{st: memState{}.clone()}
}

func (r *memRepo) nextID() int64 {
	r.st.seq++
	return r.st.seq
}

func (r *memRepo) InTx(ctx context.Context, fn func(tx repository.LoanTx) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := r.st.clone()
	defer func() {
		if p := recover(); p != nil {
			r.st = snapshot
			panic(p)
		}
		if err != nil {
			r.st = snapshot
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(&memTx{r: r})
}

func (r *memRepo) ListTeachers(context.Context) ([]model.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Teacher, 0, len(r.st.teachers))
	for _, t := range r.st.teachers {
		t.PasswordHash = ""
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memRepo) GetTeacherByEmail(_ context.Context, email string) (model.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.st.teachers {
		if strings.EqualFold(t.Email, email) {
			return t, nil
		}
	}
	return model.Teacher{}, errors.Wrapf(errs.ErrNotFound, "teacher %s", email)
}

func (r *memRepo) CountTeachers(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.st.teachers), nil
}

func (r *memRepo) CreateTeacher(_ context.Context, t model.Teacher) (model.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.Email = strings.ToLower(t.Email)
	for _, other := range r.st.teachers {
		if other.Email == t.Email {
			return model.Teacher{}, errors.Wrapf(errs.ErrConflict, "teacher %s", t.Email)
		}
	}
	t.ID = r.nextID()
	t.Active = true
	r.st.teachers[t.ID] = t
	return t, nil
}

func (r *memRepo) SetTeacherActive(_ context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.st.teachers[id]
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "teacher %d", id)
	}
	t.Active = active
	r.st.teachers[id] = t
	return nil
}

func (r *memRepo) SetTeacherPassword(_ context.Context, email, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.st.teachers {
		if strings.EqualFold(t.Email, email) {
			t.PasswordHash = hash
			r.st.teachers[id] = t
			return nil
		}
	}
	return errors.Wrapf(errs.ErrNotFound, "teacher %s", email)
}

func (r *memRepo) ListGroups(context.Context) ([]model.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Group, 0, len(r.st.groups))
	for _, g := range r.st.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *memRepo) CreateGroup(_ context.Context, req model.CreateGroupRequest) (model.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req.ResponsibleTeacherID != nil {
		if _, ok := r.st.teachers[*req.ResponsibleTeacherID]; !ok {
			return model.Group{}, errors.Wrapf(errs.ErrNotFound, "teacher %d", *req.ResponsibleTeacherID)
		}
	}
	g := model.Group{ID: r.nextID(), Name: req.Name, ResponsibleTeacherID: req.ResponsibleTeacherID, Active: true}
	r.st.groups[g.ID] = g
	return g, nil
}

func (r *memRepo) SetGroupActive(_ context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.st.groups[id]
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "group %d", id)
	}
	g.Active = active
	r.st.groups[id] = g
	return nil
}

func (r *memRepo) ListStudents(_ context.Context, groupID int64) ([]model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Student, 0)
	for _, s := range r.st.students {
		if groupID == 0 || s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memRepo) CreateStudent(_ context.Context, req model.CreateStudentRequest) (model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.groups[req.GroupID]; !ok {
		return model.Student{}, errors.Wrapf(errs.ErrNotFound, "group %d", req.GroupID)
	}
	s := model.Student{ID: r.nextID(), GroupID: req.GroupID, Name: req.Name, Active: true}
	r.st.students[s.ID] = s
	return s, nil
}

func (r *memRepo) SetStudentActive(_ context.Context, id int64, active bool) (model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.st.students[id]
	if !ok {
		return model.Student{}, errors.Wrapf(errs.ErrNotFound, "student %d", id)
	}
	s.Active = active
	r.st.students[id] = s
	return s, nil
}

func (r *memRepo) ListWardrobeItems(context.Context) ([]model.WardrobeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.WardrobeItem, 0, len(r.st.items))
	for _, it := range r.st.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *memRepo) CreateWardrobeItem(_ context.Context, req model.CreateWardrobeItemRequest) (model.WardrobeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it := model.WardrobeItem{
		ID:                r.nextID(),
		Name:              req.Name,
		Type:              req.Type,
		Size:              req.Size,
		TotalQuantity:     *req.TotalQuantity,
		AvailableQuantity: *req.TotalQuantity,
		Condition:         model.ConditionActive,
	}
	r.st.items[it.ID] = it
	return it, nil
}

func (r *memRepo) ListLoans(_ context.Context, page, size int) (model.ListLoans, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := model.ListLoans{Items: make([]model.LoanSummary, 0, len(r.st.loans))}
	for _, l := range r.st.loans {
		sum := model.LoanSummary{Loan: l}
		for _, line := range r.st.lines {
			if line.LoanID == l.ID {
				sum.Outstanding += line.Outstanding()
			}
		}
		out.Items = append(out.Items, sum)
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].ID > out.Items[j].ID })
	out.Paging = model.Paging{Page: page, PageSize: size, TotalElements: len(out.Items)}
	if page > 0 && size > 0 {
		from := min((page-1)*size, len(out.Items))
		to := min(from+size, len(out.Items))
		out.Items = out.Items[from:to]
	}
	return out, nil
}

func (r *memRepo) GetLoanWithLines(_ context.Context, loanID int64) (model.LoanDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	loan, ok := r.st.loans[loanID]
	if !ok {
		return model.LoanDetails{}, errors.Wrapf(errs.ErrNotFound, "loan %d", loanID)
	}
	details := model.LoanDetails{Loan: loan}
	for _, line := range r.linesOf(loanID) {
		d := model.LoanLineDetail{LoanLineItem: line}
		if it, ok := r.st.items[line.WardrobeItemID]; ok {
			it := it
			d.WardrobeItem = &it
		}
		details.Lines = append(details.Lines, d)
	}
	return details, nil
}

func (r *memRepo) linesOf(loanID int64) []model.LoanLineItem {
	out := make([]model.LoanLineItem, 0)
	for _, line := range r.st.lines {
		if line.LoanID == loanID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memRepo) OutstandingByStudent(_ context.Context, groupID int64) ([]model.OutstandingByStudent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.OutstandingByStudent, 0)
	for _, l := range r.st.loans {
		if l.Status == model.StatusClosed || (groupID > 0 && l.GroupID != groupID) {
			continue
		}
		for _, line := range r.linesOf(l.ID) {
			out = append(out, model.OutstandingByStudent{
				GroupID:        l.GroupID,
				StudentID:      l.StudentID,
				LoanID:         l.ID,
				Status:         l.Status,
				WardrobeItemID: line.WardrobeItemID,
				Borrowed:       line.Borrowed,
				Returned:       line.Returned,
				Lost:           line.Lost,
				Damaged:        line.Damaged,
				Outstanding:    line.Outstanding(),
			})
		}
	}
	return out, nil
}

func (r *memRepo) InventoryByGroup(context.Context) ([]model.InventoryByGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	type key struct{ group, item int64 }
	lent := map[key]int{}
	for _, l := range r.st.loans {
		if l.Status == model.StatusClosed {
			continue
		}
		for _, line := range r.linesOf(l.ID) {
			lent[key{l.GroupID, line.WardrobeItemID}] += line.Outstanding()
		}
	}
	out := make([]model.InventoryByGroup, 0, len(lent))
	for k, n := range lent {
		if n > 0 {
			out = append(out, model.InventoryByGroup{GroupID: k.group, WardrobeItemID: k.item, Lent: n})
		}
	}
	return out, nil
}

func (r *memRepo) InventoryTotals(context.Context) (model.InventoryTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var t model.InventoryTotals
	for _, it := range r.st.items {
		t.Total += it.TotalQuantity
		t.Available += it.AvailableQuantity
	}
	for _, l := range r.st.loans {
		if l.Status == model.StatusClosed {
			continue
		}
		for _, line := range r.linesOf(l.ID) {
			t.Lent += line.Outstanding()
		}
	}
	return t, nil
}

func (r *memRepo) SaveLoanEvent(_ context.Context, ev model.LoanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.events[ev.EventUID]; !ok {
		ev.ID = r.nextID()
		r.st.events[ev.EventUID] = ev
	}
	return nil
}

func (r *memRepo) ListLoanEvents(_ context.Context, loanID int64) ([]model.LoanEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.LoanEvent, 0)
	for _, ev := range r.st.events {
		if ev.LoanID == loanID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// memTx runs with memRepo.mu held by InTx.
type memTx struct {
	r *memRepo
}

func (t *memTx) GetTeacher(_ context.Context, id int64) (model.Teacher, error) {
	v, ok := t.r.st.teachers[id]
	if !ok {
		return model.Teacher{}, errors.Wrapf(errs.ErrNotFound, "teacher %d", id)
	}
	return v, nil
}

func (t *memTx) GetGroup(_ context.Context, id int64) (model.Group, error) {
	v, ok := t.r.st.groups[id]
	if !ok {
		return model.Group{}, errors.Wrapf(errs.ErrNotFound, "group %d", id)
	}
	return v, nil
}

func (t *memTx) GetStudent(_ context.Context, id int64) (model.Student, error) {
	v, ok := t.r.st.students[id]
	if !ok {
		return model.Student{}, errors.Wrapf(errs.ErrNotFound, "student %d", id)
	}
	return v, nil
}

func (t *memTx) InsertLoan(_ context.Context, loan model.Loan) (int64, error) {
	loan.ID = t.r.nextID()
	loan.Status = model.StatusOpen
	loan.ActualReturnAt = nil
	t.r.st.loans[loan.ID] = loan
	return loan.ID, nil
}

func (t *memTx) LockLoan(_ context.Context, id int64) (model.Loan, error) {
	v, ok := t.r.st.loans[id]
	if !ok {
		return model.Loan{}, errors.Wrapf(errs.ErrNotFound, "loan %d", id)
	}
	return v, nil
}

func (t *memTx) UpdateLoanStatus(_ context.Context, id int64, status model.Status, actualReturnAt *time.Time) error {
	v, ok := t.r.st.loans[id]
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "loan %d", id)
	}
	if (status == model.StatusClosed) != (actualReturnAt != nil) {
		return errors.Wrapf(errs.ErrValidation, "loan %d: closed loans need an actual return", id)
	}
	v.Status = status
	v.ActualReturnAt = actualReturnAt
	t.r.st.loans[id] = v
	return nil
}

func (t *memTx) LockWardrobeItem(_ context.Context, id int64) (model.WardrobeItem, error) {
	v, ok := t.r.st.items[id]
	if !ok {
		return model.WardrobeItem{}, errors.Wrapf(errs.ErrNotFound, "wardrobe item %d", id)
	}
	return v, nil
}

func (t *memTx) Reserve(_ context.Context, itemID int64, qty int) (int, error) {
	v, ok := t.r.st.items[itemID]
	if !ok {
		return 0, errors.Wrapf(errs.ErrNotFound, "wardrobe item %d", itemID)
	}
	if v.AvailableQuantity < qty {
		return v.AvailableQuantity, errors.Wrapf(errs.ErrInsufficientStock,
			"wardrobe item %d: requested %d, available %d", itemID, qty, v.AvailableQuantity)
	}
	v.AvailableQuantity -= qty
	t.r.st.items[itemID] = v
	return v.AvailableQuantity, nil
}

func (t *memTx) Release(_ context.Context, itemID int64, qty int) (int, error) {
	v, ok := t.r.st.items[itemID]
	if !ok {
		return 0, errors.Wrapf(errs.ErrNotFound, "wardrobe item %d", itemID)
	}
	if v.AvailableQuantity+qty > v.TotalQuantity {
		return v.AvailableQuantity, errors.Wrapf(errs.ErrStockInvariant, "wardrobe item %d", itemID)
	}
	v.AvailableQuantity += qty
	t.r.st.items[itemID] = v
	return v.AvailableQuantity, nil
}

func (t *memTx) InsertLineItem(_ context.Context, line model.LoanLineItem) (int64, error) {
	if _, ok := t.r.st.loans[line.LoanID]; !ok {
		return 0, errors.Wrapf(errs.ErrNotFound, "loan %d", line.LoanID)
	}
	line.ID = t.r.nextID()
	line.Returned, line.Lost, line.Damaged = 0, 0, 0
	t.r.st.lines[line.ID] = line
	return line.ID, nil
}

func (t *memTx) LockLineItem(_ context.Context, id int64) (model.LoanLineItem, error) {
	v, ok := t.r.st.lines[id]
	if !ok {
		return model.LoanLineItem{}, errors.Wrapf(errs.ErrNotFound, "line item %d", id)
	}
	return v, nil
}

func (t *memTx) ApplyMovement(_ context.Context, m model.Movement) (model.LoanLineItem, error) {
	v, ok := t.r.st.lines[m.LineItemID]
	if !ok {
		return model.LoanLineItem{}, errors.Wrapf(errs.ErrNotFound, "line item %d", m.LineItemID)
	}
	next, err := v.Apply(m)
	if err != nil {
		return model.LoanLineItem{}, err
	}
	t.r.st.lines[next.ID] = next
	return next, nil
}

func (t *memTx) ListLineItems(_ context.Context, loanID int64) ([]model.LoanLineItem, error) {
	return t.r.linesOf(loanID), nil
}
