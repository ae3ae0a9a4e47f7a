package handler

import (
	"net/http"
	"strconv"

	md "github.com/Astemirdum/wardrobe-service/pkg/middleware"
	"github.com/Astemirdum/wardrobe-service/pkg/validate"
	_ "github.com/Astemirdum/wardrobe-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc       WardrobeService
	jwtSecret []byte
	log       *zap.Logger
}

func New(svc WardrobeService, jwtSecret []byte, log *zap.Logger) *Handler {
	return &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/login", h.Login)

	api = api.Group("", md.JwtAuthentication(h.jwtSecret))
	api.GET("/auth/me", h.Me)

	api.GET("/teachers", h.ListTeachers)
	api.POST("/teachers", h.CreateTeacher, md.RequireAdmin)
	api.PATCH("/teachers/:id/active", h.SetTeacherActive, md.RequireAdmin)

	api.GET("/groups", h.ListGroups)
	api.POST("/groups", h.CreateGroup)
	api.PATCH("/groups/:id/active", h.SetGroupActive)

	api.GET("/students", h.ListStudents)
	api.POST("/students", h.CreateStudent)
	api.PATCH("/students/:id/active", h.SetStudentActive)

	api.GET("/wardrobe-items", h.ListWardrobeItems)
	api.POST("/wardrobe-items", h.CreateWardrobeItem)

	api.GET("/loans", h.ListLoans)
	api.POST("/loans", h.CreateLoan)
	api.GET("/loans/:id", h.GetLoan)
	api.POST("/loans/:id/returns", h.RegisterReturn)
	api.GET("/loans/:id/events", h.ListLoanEvents)

	api.GET("/reports/outstanding", h.OutstandingReport)
	api.GET("/reports/inventory", h.InventoryReport)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return n, nil
}

// bind decodes the body and runs the struct validator.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return bindError(err)
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return echo.NewHTTPError(http.StatusBadRequest, he.Message)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
