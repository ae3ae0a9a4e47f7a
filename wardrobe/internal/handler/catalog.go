package handler

import (
	"net/http"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListTeachers(c echo.Context) error {
	teachers, err := h.svc.ListTeachers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, teachers)
}

// CreateTeacher
// @Summary   Create a teacher account
// @Tags      teachers
// @Accept    json
// @Produce   json
// @Param     body  body      model.CreateTeacherRequest  true  "teacher"
// @Success   201   {object}  model.Teacher
// @Failure   409   {object}  errs.ErrorResponse
// @Security  Bearer
// @Router    /api/v1/teachers [post]
func (h *Handler) CreateTeacher(c echo.Context) error {
	var req model.CreateTeacherRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	teacher, err := h.svc.CreateTeacher(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, teacher)
}

func (h *Handler) SetTeacherActive(c echo.Context) error {
	id, active, err := activeRequest(c)
	if err != nil {
		return err
	}
	if err := h.svc.SetTeacherActive(c.Request().Context(), id, active); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListGroups(c echo.Context) error {
	groups, err := h.svc.ListGroups(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *Handler) CreateGroup(c echo.Context) error {
	var req model.CreateGroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	group, err := h.svc.CreateGroup(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, group)
}

func (h *Handler) SetGroupActive(c echo.Context) error {
	id, active, err := activeRequest(c)
	if err != nil {
		return err
	}
	if err := h.svc.SetGroupActive(c.Request().Context(), id, active); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListStudents(c echo.Context) error {
	groupID, err := queryInt(c, "groupId")
	if err != nil {
		return err
	}
	students, err := h.svc.ListStudents(c.Request().Context(), int64(groupID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, students)
}

func (h *Handler) CreateStudent(c echo.Context) error {
	var req model.CreateStudentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	student, err := h.svc.CreateStudent(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, student)
}

func (h *Handler) SetStudentActive(c echo.Context) error {
	id, active, err := activeRequest(c)
	if err != nil {
		return err
	}
	student, err := h.svc.SetStudentActive(c.Request().Context(), id, active)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, student)
}

// ListWardrobeItems
// @Summary   Wardrobe stock
// @Tags      wardrobe
// @Produce   json
// @Success   200  {array}  model.WardrobeItem
// @Security  Bearer
// @Router    /api/v1/wardrobe-items [get]
func (h *Handler) ListWardrobeItems(c echo.Context) error {
	items, err := h.svc.ListWardrobeItems(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateWardrobeItem(c echo.Context) error {
	var req model.CreateWardrobeItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.svc.CreateWardrobeItem(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func activeRequest(c echo.Context) (int64, bool, error) {
	id, err := pathID(c)
	if err != nil {
		return 0, false, err
	}
	var req model.SetActiveRequest
	if err := bind(c, &req); err != nil {
		return 0, false, err
	}
	return id, *req.Active, nil
}
