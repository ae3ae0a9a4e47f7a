package handler

import (
	"net/http"

	"github.com/Astemirdum/wardrobe-service/pkg/auth"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/labstack/echo/v4"
)

// Login
// @Summary      Log in
// @Description  Exchanges teacher credentials for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      model.LoginRequest  true  "credentials"
// @Success      200   {object}  model.LoginResponse
// @Failure      401   {object}  errs.ErrorResponse
// @Failure      403   {object}  errs.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}

func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok || id.TeacherID <= 0 {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return id, nil
}
