package branchselect

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	apperrors "recruitment-form/pkg/errors"
)

type Option struct {
	Value string
	Text  string
	Code  string
}

// Label - то, что видит пользователь: название и код, чтобы различать одинаковые названия.
func (o Option) Label() string {
	if o.Code == "" {
		return o.Text
	}
	return fmt.Sprintf("%s (%s)", o.Text, o.Code)
}

// SearchSelect - выпадающий список с поиском. Значение можно выбрать только из списка.
type SearchSelect struct {
	options   []Option
	value     string
	listeners []func(value string)
}

func NewSearchSelect() *SearchSelect {
	return &SearchSelect{}
}

// SetOptions заменяет список. Выбранное значение сбрасывается, если его больше нет.
func (s *SearchSelect) SetOptions(options []Option) {
	s.options = make([]Option, len(options))
	copy(s.options, options)
	if _, ok := s.find(s.value); !ok {
		s.value = ""
	}
}

func (s *SearchSelect) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

func (s *SearchSelect) Value() string {
	return s.value
}

func (s *SearchSelect) OnChange(fn func(value string)) {
	s.listeners = append(s.listeners, fn)
}

// Choose выбирает вариант. Произвольный ввод отклоняется, текущее значение не меняется.
func (s *SearchSelect) Choose(value string) error {
	if _, ok := s.find(value); !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownOption, value)
	}
	s.value = value
	s.notify()
	return nil
}

func (s *SearchSelect) Clear() {
	s.value = ""
	s.notify()
}

// Search ищет по названию и коду. Пустой запрос возвращает весь список в текущем порядке.
func (s *SearchSelect) Search(query string) []Option {
	if query == "" {
		return s.Options()
	}

	targets := make([]string, len(s.options))
	for i, o := range s.options {
		targets[i] = o.Text + " " + o.Code
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)

	result := make([]Option, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, s.options[rank.OriginalIndex])
	}
	return result
}

func (s *SearchSelect) find(value string) (Option, bool) {
	if value == "" {
		return Option{}, false
	}
	for _, o := range s.options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

func (s *SearchSelect) notify() {
	for _, fn := range s.listeners {
		fn(s.value)
	}
}
