// Файл: internal/controllers/branch.go

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"recruitment-form/internal/dto"
	"recruitment-form/internal/services"
	"recruitment-form/pkg/api"
	apperrors "recruitment-form/pkg/errors"
)

var branchExportHeaders = []interface{}{
	"รหัสสาขา", "ชื่อสาขา", "จังหวัด", "ภาค", "อำเภอ", "พิกัด", "สถานะ",
}

type BranchController struct {
	branchService services.BranchServiceInterface
	logger        *zap.Logger
}

func NewBranchController(
	branchService services.BranchServiceInterface,
	logger *zap.Logger,
) *BranchController {
	return &BranchController{
		branchService: branchService,
		logger:        logger,
	}
}

// GetBranches всегда отвечает 200: при сбое хранилища сервис сам подставляет запасной список.
func (c *BranchController) GetBranches(ctx echo.Context) error {
	res := c.branchService.GetBranches(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, res)
}

func (c *BranchController) HealthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.branchService.Health())
}

func (c *BranchController) ExportBranches(ctx echo.Context) error {
	res := c.branchService.GetBranches(ctx.Request().Context())

	f, err := buildBranchWorkbook(branchExportSheet, res.Data)
	if err != nil {
		c.logger.Error("Ошибка формирования выгрузки филиалов", zap.Error(err))
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось сформировать выгрузку", err, nil))
	}
	defer f.Close()

	fileName := fmt.Sprintf("branches_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	if res.Note != "" {
		ctx.Response().Header().Set("X-Branch-Note", res.Note)
	}
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

const branchExportSheet = "Branches"

// buildBranchWorkbook собирает книгу целиком до записи в ответ: при ошибке клиент не получит обрывок файла.
func buildBranchWorkbook(sheet string, branches []dto.BranchRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	fail := func(err error) (*excelize.File, error) {
		_ = f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fail(err)
	}
	if err := f.SetSheetRow(sheet, "A1", &branchExportHeaders); err != nil {
		return fail(err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fail(err)
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", style); err != nil {
		return fail(err)
	}

	for i, b := range branches {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fail(err)
		}
		row := branchToRow(b)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fail(fmt.Errorf("строка %d (%s): %w", i+2, b.Code, err))
		}
	}
	if err := f.SetColWidth(sheet, "B", "B", 30); err != nil {
		return fail(err)
	}
	if err := f.SetColWidth(sheet, "C", "F", 20); err != nil {
		return fail(err)
	}
	return f, nil
}

func branchToRow(b dto.BranchRecord) []interface{} {
	return []interface{}{b.Code, b.Text, b.Province, b.Region, b.District, b.Coordinates, b.Status}
}
