package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.repo.ListTeachers(ctx)
}

func (s *Service) CreateTeacher(ctx context.Context, req model.CreateTeacherRequest) (model.Teacher, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return model.Teacher{}, errors.Wrap(errs.ErrValidation, "name, email and password are required")
	}
	if req.Role == "" {
		req.Role = model.RoleTeacher
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.Teacher{}, err
	}
	return s.repo.CreateTeacher(ctx, model.Teacher{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         req.Role,
	})
}

func (s *Service) SetTeacherActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetTeacherActive(ctx, id, active)
}

func (s *Service) ListGroups(ctx context.Context) ([]model.Group, error) {
	return s.repo.ListGroups(ctx)
}

func (s *Service) CreateGroup(ctx context.Context, req model.CreateGroupRequest) (model.Group, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return model.Group{}, errors.Wrap(errs.ErrValidation, "name is required")
	}
	return s.repo.CreateGroup(ctx, req)
}

func (s *Service) SetGroupActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetGroupActive(ctx, id, active)
}

func (s *Service) ListStudents(ctx context.Context, groupID int64) ([]model.Student, error) {
	return s.repo.ListStudents(ctx, groupID)
}

func (s *Service) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error) {
	req.Normalize()
	if req.Name == "" || req.GroupID <= 0 {
		return model.Student{}, errors.Wrap(errs.ErrValidation, "groupId and name are required")
	}
	return s.repo.CreateStudent(ctx, req)
}

func (s *Service) SetStudentActive(ctx context.Context, id int64, active bool) (model.Student, error) {
	return s.repo.SetStudentActive(ctx, id, active)
}

func (s *Service) ListWardrobeItems(ctx context.Context) ([]model.WardrobeItem, error) {
	return s.repo.ListWardrobeItems(ctx)
}

func (s *Service) CreateWardrobeItem(ctx context.Context, req model.CreateWardrobeItemRequest) (model.WardrobeItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.TotalQuantity == nil || *req.TotalQuantity < 0 || *req.TotalQuantity > model.MaxQuantity {
		return model.WardrobeItem{}, errors.Wrap(errs.ErrValidation, "name and totalQuantity >= 0 are required")
	}
	return s.repo.CreateWardrobeItem(ctx, req)
}
