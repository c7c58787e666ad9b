package branchselect

// SelectControl - выпадающий список филиалов на странице.
type SelectControl interface {
	SetOptions(options []Option)
	Value() string
	OnChange(fn func(value string))
}

// Field - скрытое поле с кодом филиала.
type Field interface {
	SetValue(value string)
	Value() string
}

type Form interface {
	OnSubmit(fn func(ev *SubmitEvent))
}

type Navigator interface {
	Navigate(target string)
}

// SubmitEvent - отправка формы. Обработчик может отменить переход по умолчанию.
type SubmitEvent struct {
	defaultPrevented bool
}

func (e *SubmitEvent) PreventDefault() { e.defaultPrevented = true }

func (e *SubmitEvent) DefaultPrevented() bool { return e.defaultPrevented }

type HiddenField struct {
	value string
}

func NewHiddenField() *HiddenField { return &HiddenField{} }

func (f *HiddenField) SetValue(value string) { f.value = value }

func (f *HiddenField) Value() string { return f.value }

// HTMLForm раздаёт событие отправки всем подписчикам по порядку подписки.
type HTMLForm struct {
	handlers []func(ev *SubmitEvent)
}

func NewHTMLForm() *HTMLForm { return &HTMLForm{} }

func (f *HTMLForm) OnSubmit(fn func(ev *SubmitEvent)) {
	f.handlers = append(f.handlers, fn)
}

// Submit возвращает событие, чтобы вызывающий видел, был ли отменён переход.
func (f *HTMLForm) Submit() *SubmitEvent {
	ev := &SubmitEvent{}
	for _, h := range f.handlers {
		h(ev)
	}
	return ev
}

// RecordingNavigator запоминает адреса переходов вместо реальной навигации.
type RecordingNavigator struct {
	targets []string
}

func NewRecordingNavigator() *RecordingNavigator { return &RecordingNavigator{} }

func (n *RecordingNavigator) Navigate(target string) {
	n.targets = append(n.targets, target)
}

func (n *RecordingNavigator) Last() string {
	if len(n.targets) == 0 {
		return ""
	}
	return n.targets[len(n.targets)-1]
}

func (n *RecordingNavigator) Targets() []string {
	out := make([]string, len(n.targets))
	copy(out, n.targets)
	return out
}
