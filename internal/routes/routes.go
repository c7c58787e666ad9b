package routes

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"recruitment-form/internal/branchselect"
	"recruitment-form/internal/controllers"
	"recruitment-form/internal/services"
	"recruitment-form/internal/views"
	"recruitment-form/pkg/api"
	"recruitment-form/pkg/config"
	apperrors "recruitment-form/pkg/errors"
	"recruitment-form/pkg/metrics"
	"recruitment-form/pkg/middleware"
)

type Dependencies struct {
	BranchService      services.BranchServiceInterface
	ApplicationService services.ApplicationServiceInterface
	// SelectSource - источник справочника для страницы выбора филиала.
	SelectSource branchselect.Source
}

func InitRouter(e *echo.Echo, deps Dependencies, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}
	e.Renderer = renderer

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				_ = api.ErrorResponse(c, httpErr)
			}
			return err
		},
	}))
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLogger(logger.Named("http")))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	// --- 1. КОНТРОЛЛЕРЫ ---
	branchCtrl := controllers.NewBranchController(deps.BranchService, logger.Named("branch_controller"))
	applicationCtrl := controllers.NewApplicationController(deps.ApplicationService, logger.Named("application_controller"))
	selectCtrl := controllers.NewBranchSelectController(deps.SelectSource, cfg.Form.ApplicationPage, logger.Named("branch_select_controller"))

	// --- 2. МАРШРУТЫ ---
	e.GET("/branches", branchCtrl.GetBranches)
	e.GET("/getBranches", branchCtrl.GetBranches)
	e.GET("/branches/export", branchCtrl.ExportBranches)
	e.GET("/health", branchCtrl.HealthCheck)
	e.GET("/healthCheck", branchCtrl.HealthCheck)

	e.GET("/branch-select", selectCtrl.Page)
	e.POST("/branch-select", selectCtrl.Submit)

	e.POST("/applications/validate", applicationCtrl.Validate)

	metrics.Register(e, "/metrics")

	if dir := cfg.Server.PublicDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			e.Static("/", dir)
			logger.Info("Раздаём статические файлы", zap.String("dir", dir))
		}
	}

	logger.Info("InitRouter: Маршруты созданы")
	return nil
}
