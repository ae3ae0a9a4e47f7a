package handler

import (
	"context"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type WardrobeService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)

	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	CreateTeacher(ctx context.Context, req model.CreateTeacherRequest) (model.Teacher, error)
	SetTeacherActive(ctx context.Context, id int64, active bool) error
	ListGroups(ctx context.Context) ([]model.Group, error)
	CreateGroup(ctx context.Context, req model.CreateGroupRequest) (model.Group, error)
	SetGroupActive(ctx context.Context, id int64, active bool) error
	ListStudents(ctx context.Context, groupID int64) ([]model.Student, error)
	CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error)
	SetStudentActive(ctx context.Context, id int64, active bool) (model.Student, error)
	ListWardrobeItems(ctx context.Context) ([]model.WardrobeItem, error)
	CreateWardrobeItem(ctx context.Context, req model.CreateWardrobeItemRequest) (model.WardrobeItem, error)

	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (int64, error)
	RegisterReturn(ctx context.Context, teacherID int64, req model.RegisterReturnRequest) (model.Status, error)
	GetLoanWithLines(ctx context.Context, loanID int64) (model.LoanDetails, error)
	ListLoans(ctx context.Context, page, size int) (model.ListLoans, error)
	ListLoanEvents(ctx context.Context, loanID int64) ([]model.LoanEvent, error)

	OutstandingByStudent(ctx context.Context, groupID int64) ([]model.OutstandingByStudent, error)
	InventoryReport(ctx context.Context) (model.InventoryReport, error)
}

type EventRecorder interface {
	RecordEvent(ctx context.Context, ev model.LoanEvent) error
}

var (
	_ WardrobeService = (*service.Service)(nil)
	_ EventRecorder   = (*service.Service)(nil)
)
