package model_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/stretchr/testify/require"
)

func line(borrowed, returned, lost, damaged int) model.LoanLineItem {
	return model.LoanLineItem{ID: 1, LoanID: 1, WardrobeItemID: 1,
		Borrowed: borrowed, Returned: returned, Lost: lost, Damaged: damaged}
}

func TestLoanLineItem_Apply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		line    model.LoanLineItem
		move    model.Movement
		want    model.LoanLineItem
		wantErr error
	}{
		{
			name: "partial",
			line: line(5, 0, 0, 0),
			move: model.Movement{Returned: 2, Lost: 1},
			want: line(5, 2, 1, 0),
		},
		{
			name: "exactly borrowed",
			line: line(5, 2, 1, 0),
			move: model.Movement{Returned: 1, Damaged: 1},
			want: line(5, 3, 1, 1),
		},
		{
			name:    "over return",
			line:    line(5, 2, 1, 0),
			move:    model.Movement{Returned: 3},
			want:    line(5, 2, 1, 0),
			wantErr: errs.ErrOverReturn,
		},
		{
			name:    "negative",
			line:    line(5, 0, 0, 0),
			move:    model.Movement{Returned: 2, Lost: -1},
			want:    line(5, 0, 0, 0),
			wantErr: errs.ErrValidation,
		},
		{
			name:    "count wraps past max int",
			line:    line(5, 0, 0, 0),
			move:    model.Movement{Returned: math.MaxInt, Lost: 1},
			want:    line(5, 0, 0, 0),
			wantErr: errs.ErrOverReturn,
		},
		{
			name:    "sum wraps past max int",
			line:    line(5, 0, 0, 0),
			move:    model.Movement{Returned: math.MaxInt / 2, Lost: math.MaxInt / 2, Damaged: 3},
			want:    line(5, 0, 0, 0),
			wantErr: errs.ErrOverReturn,
		},
		{
			name: "zero movement",
			line: line(5, 1, 0, 0),
			move: model.Movement{},
			want: line(5, 1, 0, 0),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.line.Apply(tt.move)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, got.Processed(), got.Borrowed)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		lines []model.LoanLineItem
		want  model.Status
	}{
		{name: "empty", lines: nil, want: model.StatusOpen},
		{name: "untouched", lines: []model.LoanLineItem{line(3, 0, 0, 0), line(2, 0, 0, 0)}, want: model.StatusOpen},
		{name: "one processed", lines: []model.LoanLineItem{line(3, 1, 0, 0), line(2, 0, 0, 0)}, want: model.StatusPartial},
		{name: "one closed", lines: []model.LoanLineItem{line(3, 0, 3, 0), line(2, 0, 0, 0)}, want: model.StatusPartial},
		{name: "all closed", lines: []model.LoanLineItem{line(3, 1, 1, 1), line(2, 2, 0, 0)}, want: model.StatusClosed},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.DeriveStatus(tt.lines))

			reversed := make([]model.LoanLineItem, len(tt.lines))
			for i := range tt.lines {
				reversed[len(tt.lines)-1-i] = tt.lines[i]
			}
			require.Equal(t, tt.want, model.DeriveStatus(reversed), "order must not matter")
		})
	}
}

func TestNextLifecycle(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	t.Run("closing sets timestamp", func(t *testing.T) {
		st, at, err := model.NextLifecycle(model.Loan{Status: model.StatusPartial}, []model.LoanLineItem{line(2, 2, 0, 0)}, now)
		require.NoError(t, err)
		require.Equal(t, model.StatusClosed, st)
		require.NotNil(t, at)
		require.Equal(t, now, *at)
	})
	t.Run("partial clears timestamp", func(t *testing.T) {
		st, at, err := model.NextLifecycle(model.Loan{Status: model.StatusOpen}, []model.LoanLineItem{line(2, 1, 0, 0)}, now)
		require.NoError(t, err)
		require.Equal(t, model.StatusPartial, st)
		require.Nil(t, at)
	})
	t.Run("closed stays closed with original timestamp", func(t *testing.T) {
		loan := model.Loan{Status: model.StatusClosed, ActualReturnAt: &earlier}
		st, at, err := model.NextLifecycle(loan, []model.LoanLineItem{line(2, 2, 0, 0)}, now)
		require.NoError(t, err)
		require.Equal(t, model.StatusClosed, st)
		require.Equal(t, earlier, *at)
	})
	t.Run("regression is rejected", func(t *testing.T) {
		loan := model.Loan{ID: 9, Status: model.StatusPartial}
		st, _, err := model.NextLifecycle(loan, []model.LoanLineItem{line(2, 0, 0, 0)}, now)
		require.ErrorIs(t, err, errs.ErrStatusRegression)
		require.Equal(t, model.StatusPartial, st)
	})
}

func TestStatusIsForwardOnly(t *testing.T) {
	t.Parallel()
	// walk a loan through every movement sequence and check status never moves back
	moves := []model.Movement{{Returned: 1}, {Lost: 1}, {Damaged: 1}, {}}
	var walk func(l model.LoanLineItem, prev model.Status, depth int)
	walk = func(l model.LoanLineItem, prev model.Status, depth int) {
		if depth == 0 {
			return
		}
		for _, m := range moves {
			next, err := l.Apply(m)
			if err != nil {
				require.ErrorIs(t, err, errs.ErrOverReturn)
				continue
			}
			st, _, err := model.NextLifecycle(model.Loan{Status: prev}, []model.LoanLineItem{next, line(1, 0, 0, 0)}, time.Now())
			require.NoError(t, err)
			walk(next, st, depth-1)
		}
	}
	walk(line(3, 0, 0, 0), model.StatusOpen, 5)
}

func TestCreateLoanRequest_Validate(t *testing.T) {
	t.Parallel()
	ok := model.CreateLoanRequest{TeacherID: 1, GroupID: 1, StudentID: 1,
		Items: []model.LoanItemRequest{{WardrobeItemID: 1, Quantity: 1}}}
	require.NoError(t, ok.Validate())

	noItems := ok
	noItems.Items = nil
	require.ErrorIs(t, noItems.Validate(), errs.ErrValidation)

	zeroQty := ok
	zeroQty.Items = []model.LoanItemRequest{{WardrobeItemID: 1, Quantity: 0}}
	require.ErrorIs(t, zeroQty.Validate(), errs.ErrValidation)

	huge := ok
	huge.Items = []model.LoanItemRequest{{WardrobeItemID: 1, Quantity: model.MaxQuantity + 1}}
	require.ErrorIs(t, huge.Validate(), errs.ErrValidation)

	noTeacher := ok
	noTeacher.TeacherID = 0
	require.ErrorIs(t, noTeacher.Validate(), errs.ErrValidation)
}

func TestRegisterReturnRequest_Validate(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, model.RegisterReturnRequest{LoanID: 1}.Validate(), errs.ErrValidation)
	require.ErrorIs(t, model.RegisterReturnRequest{LoanID: 1, Items: []model.Movement{{LineItemID: 1, Lost: -2}}}.Validate(), errs.ErrValidation)
	require.ErrorIs(t, model.RegisterReturnRequest{LoanID: 1, Items: []model.Movement{{LineItemID: 1, Returned: math.MaxInt}}}.Validate(), errs.ErrValidation)
	require.NoError(t, model.RegisterReturnRequest{LoanID: 1, Items: []model.Movement{{LineItemID: 1}}}.Validate())
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	var req model.CreateLoanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expectedReturnDate":"2026-11-02"}`), &req))
	require.Equal(t, time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), req.ExpectedReturnDate.Time)

	req = model.CreateLoanRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"expectedReturnDate":null}`), &req))
	require.Nil(t, req.ExpectedReturnDate)

	require.Error(t, json.Unmarshal([]byte(`{"expectedReturnDate":"next week"}`), &req))
}
