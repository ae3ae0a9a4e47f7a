package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/wardrobe-service/pkg/auth"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}
	return string(hash), nil
}

// Login checks the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return model.LoginResponse{}, errors.Wrap(errs.ErrValidation, "email and password are required")
	}
	teacher, err := s.repo.GetTeacherByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		return model.LoginResponse{}, errs.ErrUnauthorized
	}
	if err != nil {
		return model.LoginResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, errs.ErrUnauthorized
	}
	if !teacher.Active {
		return model.LoginResponse{}, errs.ErrInactive
	}

	token, expiresAt, err := auth.NewToken([]byte(s.auth.Secret), auth.Profile{
		TeacherID: teacher.ID,
		Name:      teacher.Name,
		Role:      string(teacher.Role),
	}, teacher.Email, s.auth.TTL)
	if err != nil {
		return model.LoginResponse{}, err
	}
	teacher.PasswordHash = ""
	return model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      teacher,
	}, nil
}

// EnsureAdmin creates the first ADMIN teacher when the teachers table is empty.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := s.repo.CountTeachers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if name == "" {
		name = "Administrator"
	}
	admin, err := s.CreateTeacher(ctx, model.CreateTeacherRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return err
	}
	s.log.Info("bootstrap admin created", zap.Int64("teacher_id", admin.ID), zap.String("email", admin.Email))
	return nil
}

// SetPassword replaces the stored hash of the teacher with the given email.
func (s *Service) SetPassword(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < 6 {
		return errors.Wrap(errs.ErrValidation, "email and a password of at least 6 characters are required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SetTeacherPassword(ctx, email, hash)
}
