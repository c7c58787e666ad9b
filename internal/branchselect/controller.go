// Package branchselect - контроллер страницы выбора филиала.
// Загружает справочник (или запасной список), строит выпадающий список,
// держит скрытое поле с кодом в актуальном состоянии и при отправке формы
// переводит соискателя на страницу анкеты с выбранным филиалом в query string.
package branchselect

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"recruitment-form/internal/dto"
	"recruitment-form/internal/integrations/fallback"
	apperrors "recruitment-form/pkg/errors"
	"recruitment-form/pkg/metrics"
)

const DefaultNextPage = "applicationform.html"

// Source - откуда контроллер берёт справочник: удалённый сервис или сервис в том же процессе.
type Source interface {
	FetchBranches(ctx context.Context) (*dto.BranchListResponse, error)
}

// Elements - элементы страницы, с которыми работает контроллер. Все обязательны.
type Elements struct {
	Select    SelectControl
	CodeField Field
	Form      Form
	Navigator Navigator
}

type Options struct {
	NextPage string
}

// Selection - то, что уходит на страницу анкеты.
type Selection struct {
	Branch string
	Code   string
	Text   string
}

var errEmptyList = errors.New("справочник вернул пустой список")

type Controller struct {
	source   Source
	el       Elements
	nextPage string
	logger   *zap.Logger

	loaded   bool
	branches []dto.BranchRecord
	origin   string
}

func New(source Source, el Elements, opts Options, logger *zap.Logger) (*Controller, error) {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingElement, name)
	}
	switch {
	case source == nil:
		return nil, missing("branch source")
	case el.Select == nil:
		return nil, missing("branch select")
	case el.CodeField == nil:
		return nil, missing("branch code field")
	case el.Form == nil:
		return nil, missing("application form")
	case el.Navigator == nil:
		return nil, missing("navigator")
	}

	if opts.NextPage == "" {
		opts.NextPage = DefaultNextPage
	}
	return &Controller{
		source:   source,
		el:       el,
		nextPage: opts.NextPage,
		logger:   logger.Named("branch_select"),
	}, nil
}

// Init - всё, что делает страница при открытии: загрузка, список, подписки.
func (c *Controller) Init(ctx context.Context) {
	c.Load(ctx)
	c.RenderOptions()
	c.Bind()
}

// Load загружает справочник один раз. Ошибки не возвращаются: при любом сбое
// контроллер переходит на запасной список, так что результат никогда не пуст.
func (c *Controller) Load(ctx context.Context) []dto.BranchRecord {
	if c.loaded {
		return c.Branches()
	}
	c.loaded = true

	records, err := c.fetchLive(ctx)
	if err != nil {
		c.logger.Warn("Справочник филиалов недоступен, используем запасной список", zap.Error(err))
		c.branches = fallback.Branches()
		c.origin = metrics.OriginFallback
	} else {
		c.branches = records
		c.origin = metrics.OriginLive
	}
	metrics.SelectLoads.WithLabelValues(c.origin).Inc()
	return c.Branches()
}

func (c *Controller) fetchLive(ctx context.Context) ([]dto.BranchRecord, error) {
	resp, err := c.source.FetchBranches(ctx)
	if err != nil {
		return nil, err
	}
	if resp == nil || !resp.Success {
		return nil, apperrors.ErrMalformedResponse
	}
	// Сервис сам отдал запасной список: для страницы это не живые данные.
	if resp.Note != "" {
		return nil, fmt.Errorf("справочник работает на запасных данных: %s", resp.Note)
	}

	seen := make(map[string]struct{}, len(resp.Data))
	records := make([]dto.BranchRecord, 0, len(resp.Data))
	for _, rec := range resp.Data {
		key := rec.Code
		if key == "" {
			key = rec.Value
		}
		if key == "" {
			c.logger.Debug("Запись без кода и значения пропущена", zap.String("text", rec.Text))
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rec.Value = key
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, errEmptyList
	}
	return records, nil
}

func (c *Controller) Branches() []dto.BranchRecord {
	out := make([]dto.BranchRecord, len(c.branches))
	copy(out, c.branches)
	return out
}

// Origin - "live" или "fallback"; до Load пустая строка.
func (c *Controller) Origin() string { return c.origin }

func (c *Controller) UsingFallback() bool { return c.origin == metrics.OriginFallback }

// RenderOptions строит список по тайскому алфавиту, при равных названиях - по коду.
func (c *Controller) RenderOptions() []Option {
	options := make([]Option, 0, len(c.branches))
	for _, b := range c.branches {
		options = append(options, Option{Value: b.Key(), Text: b.Text, Code: b.Code})
	}

	col := collate.New(language.Thai)
	sort.SliceStable(options, func(i, j int) bool {
		if cmp := col.CompareString(options[i].Text, options[j].Text); cmp != 0 {
			return cmp < 0
		}
		return options[i].Code < options[j].Code
	})

	c.el.Select.SetOptions(options)
	return options
}

func (c *Controller) Bind() {
	c.el.Select.OnChange(c.OnSelectionChange)
	c.el.Form.OnSubmit(c.OnSubmit)
}

// OnSelectionChange кладёт в скрытое поле код выбранного филиала, а если
// значение не найдено (выбор сброшен или устарел) - пустую строку.
func (c *Controller) OnSelectionChange(value string) {
	rec, ok := c.lookup(value)
	if !ok {
		c.el.CodeField.SetValue("")
		return
	}
	c.el.CodeField.SetValue(rec.Code)
}

func (c *Controller) OnSubmit(ev *SubmitEvent) {
	if ev != nil {
		ev.PreventDefault()
	}
	target := BuildTarget(c.nextPage, c.Selection())
	c.logger.Debug("Переход на анкету", zap.String("target", target))
	c.el.Navigator.Navigate(target)
}

// Selection читает текущее значение списка. Ничего не выбрано - пустые строки.
func (c *Controller) Selection() Selection {
	value := c.el.Select.Value()
	rec, ok := c.lookup(value)
	if !ok {
		return Selection{Branch: value}
	}
	return Selection{Branch: value, Code: rec.Code, Text: rec.Text}
}

func (c *Controller) SelectedCode() string {
	return c.el.CodeField.Value()
}

func (c *Controller) lookup(value string) (dto.BranchRecord, bool) {
	if value == "" {
		return dto.BranchRecord{}, false
	}
	for _, b := range c.branches {
		if b.Key() == value {
			return b, true
		}
	}
	for _, b := range c.branches {
		if b.Code == value {
			return b, true
		}
	}
	return dto.BranchRecord{}, false
}

// BuildTarget собирает адрес страницы анкеты. Ключи идут в порядке branch, code, text.
func BuildTarget(page string, sel Selection) string {
	if page == "" {
		page = DefaultNextPage
	}
	params := url.Values{}
	params.Set("branch", sel.Branch)
	params.Set("code", sel.Code)
	params.Set("text", sel.Text)
	return page + "?" + params.Encode()
}
