package handler

import (
	"net/http"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/labstack/echo/v4"
)

// ListLoans
// @Summary   List loans
// @Tags      loans
// @Produce   json
// @Param     page  query     int  false  "page"
// @Param     size  query     int  false  "page size"
// @Success   200   {object}  model.ListLoans
// @Security  Bearer
// @Router    /api/v1/loans [get]
func (h *Handler) ListLoans(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}
	loans, err := h.svc.ListLoans(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// CreateLoan
// @Summary   Create a loan
// @Tags      loans
// @Accept    json
// @Produce   json
// @Param     body  body      model.CreateLoanRequest  true  "loan"
// @Success   201   {object}  model.CreateLoanResponse
// @Failure   400   {object}  errs.ErrorResponse
// @Failure   404   {object}  errs.ErrorResponse
// @Failure   409   {object}  errs.ErrorResponse
// @Security  Bearer
// @Router    /api/v1/loans [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	req.TeacherID = id.TeacherID

	loanID, err := h.svc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreateLoanResponse{LoanID: loanID})
}

// GetLoan
// @Summary   Loan with its lines
// @Tags      loans
// @Produce   json
// @Param     id   path      int  true  "loan id"
// @Success   200  {object}  model.LoanDetails
// @Failure   404  {object}  errs.ErrorResponse
// @Security  Bearer
// @Router    /api/v1/loans/{id} [get]
func (h *Handler) GetLoan(c echo.Context) error {
	loanID, err := pathID(c)
	if err != nil {
		return err
	}
	details, err := h.svc.GetLoanWithLines(c.Request().Context(), loanID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// RegisterReturn
// @Summary   Register returned, lost or damaged units
// @Tags      loans
// @Accept    json
// @Produce   json
// @Param     id    path      int                          true  "loan id"
// @Param     body  body      model.RegisterReturnRequest  true  "movements"
// @Success   200   {object}  model.RegisterReturnResponse
// @Failure   400   {object}  errs.ErrorResponse
// @Failure   404   {object}  errs.ErrorResponse
// @Failure   409   {object}  errs.ErrorResponse
// @Security  Bearer
// @Router    /api/v1/loans/{id}/returns [post]
func (h *Handler) RegisterReturn(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	loanID, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.RegisterReturnRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	req.LoanID = loanID

	status, err := h.svc.RegisterReturn(c.Request().Context(), id.TeacherID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.RegisterReturnResponse{Status: status})
}

func (h *Handler) ListLoanEvents(c echo.Context) error {
	loanID, err := pathID(c)
	if err != nil {
		return err
	}
	events, err := h.svc.ListLoanEvents(c.Request().Context(), loanID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}
