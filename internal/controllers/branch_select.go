package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"recruitment-form/internal/branchselect"
	"recruitment-form/internal/views"
	apperrors "recruitment-form/pkg/errors"
)

// BranchSelectController отдаёт страницу выбора филиала без JavaScript:
// на каждый запрос собирается свой контроллер branchselect со своими элементами.
type BranchSelectController struct {
	source   branchselect.Source
	nextPage string
	logger   *zap.Logger
}

func NewBranchSelectController(source branchselect.Source, nextPage string, logger *zap.Logger) *BranchSelectController {
	return &BranchSelectController{source: source, nextPage: nextPage, logger: logger}
}

type selectPage struct {
	ctrl *branchselect.Controller
	sel  *branchselect.SearchSelect
	code *branchselect.HiddenField
	form *branchselect.HTMLForm
	nav  *branchselect.RecordingNavigator
}

func (c *BranchSelectController) open(ctx echo.Context) (*selectPage, error) {
	p := &selectPage{
		sel:  branchselect.NewSearchSelect(),
		code: branchselect.NewHiddenField(),
		form: branchselect.NewHTMLForm(),
		nav:  branchselect.NewRecordingNavigator(),
	}
	ctrl, err := branchselect.New(c.source, branchselect.Elements{
		Select:    p.sel,
		CodeField: p.code,
		Form:      p.form,
		Navigator: p.nav,
	}, branchselect.Options{NextPage: c.nextPage}, c.logger)
	if err != nil {
		return nil, err
	}
	ctrl.Init(ctx.Request().Context())
	p.ctrl = ctrl
	return p, nil
}

func (c *BranchSelectController) Page(ctx echo.Context) error {
	p, err := c.open(ctx)
	if err != nil {
		c.logger.Error("Страница выбора филиала собрана неверно", zap.Error(err))
		return err
	}
	return c.render(ctx, http.StatusOK, p, strings.TrimSpace(ctx.QueryParam("q")), "")
}

// Submit повторяет отправку формы на странице: выбор, скрытый код, переход на анкету.
func (c *BranchSelectController) Submit(ctx echo.Context) error {
	p, err := c.open(ctx)
	if err != nil {
		c.logger.Error("Страница выбора филиала собрана неверно", zap.Error(err))
		return err
	}

	if branch := ctx.FormValue("branch"); branch != "" {
		if err := p.sel.Choose(branch); err != nil {
			if errors.Is(err, apperrors.ErrUnknownOption) {
				return c.render(ctx, http.StatusBadRequest, p, "", "กรุณาเลือกสาขาจากรายการ")
			}
			return err
		}
	}

	p.form.Submit()
	return ctx.Redirect(http.StatusSeeOther, p.nav.Last())
}

func (c *BranchSelectController) render(ctx echo.Context, code int, p *selectPage, query, message string) error {
	options := p.sel.Options()
	if query != "" {
		options = p.sel.Search(query)
	}
	return ctx.Render(code, views.BranchSelectTemplate, views.BranchSelectPage{
		Options:       options,
		Total:         len(p.sel.Options()),
		Query:         query,
		Selected:      p.sel.Value(),
		SelectedCode:  p.ctrl.SelectedCode(),
		UsingFallback: p.ctrl.UsingFallback(),
		Error:         message,
	})
}
