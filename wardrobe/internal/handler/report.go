package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OutstandingReport
// @Summary   Units still out, per student
// @Tags      reports
// @Produce   json
// @Param     groupId  query    int  false  "group filter"
// @Success   200      {array}  model.OutstandingByStudent
// @Security  Bearer
// @Router    /api/v1/reports/outstanding [get]
func (h *Handler) OutstandingReport(c echo.Context) error {
	groupID, err := queryInt(c, "groupId")
	if err != nil {
		return err
	}
	rows, err := h.svc.OutstandingByStudent(c.Request().Context(), int64(groupID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// InventoryReport
// @Summary   Units lent per group with stock totals
// @Tags      reports
// @Produce   json
// @Success   200  {object}  model.InventoryReport
// @Security  Bearer
// @Router    /api/v1/reports/inventory [get]
func (h *Handler) InventoryReport(c echo.Context) error {
	report, err := h.svc.InventoryReport(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
