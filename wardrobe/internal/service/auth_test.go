package service

import (
	"context"
	"testing"

	"github.com/Astemirdum/wardrobe-service/pkg/auth"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Login(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.svc.CreateTeacher(ctx, model.CreateTeacherRequest{
		Name: " Rosa ", Email: "Rosa@School.test", Password: "s3cret!",
	})
	require.NoError(t, err)
	require.Equal(t, model.RoleTeacher, created.Role)
	require.Equal(t, "Rosa", created.Name)

	_, err = e.svc.CreateTeacher(ctx, model.CreateTeacherRequest{Name: "Dup", Email: "rosa@school.test", Password: "xxxxxx"})
	require.ErrorIs(t, err, errs.ErrConflict)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "missing password", email: "rosa@school.test", wantErr: errs.ErrValidation},
		{name: "unknown email", email: "nobody@school.test", password: "s3cret!", wantErr: errs.ErrUnauthorized},
		{name: "wrong password", email: "rosa@school.test", password: "nope", wantErr: errs.ErrUnauthorized},
		{name: "ok, email case ignored", email: "ROSA@school.test", password: "s3cret!"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.svc.Login(ctx, model.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Empty(t, resp.User.PasswordHash)

			claims, err := auth.ParseToken([]byte("test-secret"), resp.Token)
			require.NoError(t, err)
			require.Equal(t, created.ID, claims.Profile.TeacherID)
			require.Equal(t, auth.RoleTeacher, claims.Profile.Role)
		})
	}

	require.NoError(t, e.svc.SetTeacherActive(ctx, created.ID, false))
	_, err = e.svc.Login(ctx, model.LoginRequest{Email: "rosa@school.test", Password: "s3cret!"})
	require.ErrorIs(t, err, errs.ErrInactive)
}

func TestService_SetPassword(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.CreateTeacher(ctx, model.CreateTeacherRequest{Name: "Eva", Email: "eva@school.test", Password: "first1"})
	require.NoError(t, err)

	require.ErrorIs(t, e.svc.SetPassword(ctx, "eva@school.test", "123"), errs.ErrValidation)
	require.ErrorIs(t, e.svc.SetPassword(ctx, "ghost@school.test", "second2"), errs.ErrNotFound)
	require.NoError(t, e.svc.SetPassword(ctx, "eva@school.test", "second2"))

	_, err = e.svc.Login(ctx, model.LoginRequest{Email: "eva@school.test", Password: "first1"})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = e.svc.Login(ctx, model.LoginRequest{Email: "eva@school.test", Password: "second2"})
	require.NoError(t, err)
}

func TestService_EnsureAdmin(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	e := &env{repo: repo}
	e.svc = NewService(repo, &recordingPublisher{}, nil, auth.Config{Secret: "test-secret"}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, e.svc.EnsureAdmin(ctx, "", "", ""))
	n, _ := repo.CountTeachers(ctx)
	require.Zero(t, n)

	require.NoError(t, e.svc.EnsureAdmin(ctx, "", "admin@school.test", "changeme"))
	require.NoError(t, e.svc.EnsureAdmin(ctx, "", "other@school.test", "changeme"))
	teachers, err := repo.ListTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	require.Equal(t, model.RoleAdmin, teachers[0].Role)
	require.Equal(t, "admin@school.test", teachers[0].Email)
}
