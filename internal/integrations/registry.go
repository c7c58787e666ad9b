// Файл: internal/integrations/registry.go
package integrations

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	apperrors "recruitment-form/pkg/errors"
)

// RegistryInterface - набор хранилищ справочника филиалов, одно из которых активно.
type RegistryInterface interface {
	Register(provider DataProvider) error
	Get(name string) (DataProvider, error)
	SetActive(name string) error
	// GetActive - хранилище, из которого сервис читает филиалы; без него ErrNoActiveProvider.
	GetActive() (DataProvider, error)
	Names() []string
	// Close закрывает провайдеров, которые держат соединения (клиент BigQuery и т.п.).
	Close() error
}

type Registry struct {
	mu        sync.RWMutex
	providers map[string]DataProvider
	active    string
}

func NewRegistry() RegistryInterface {
	return &Registry{providers: make(map[string]DataProvider)}
}

func (r *Registry) Register(provider DataProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("хранилище '%s' уже зарегистрировано", name)
	}
	r.providers[name] = provider
	return nil
}

func (r *Registry) Get(name string) (DataProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(name)
}

func (r *Registry) get(name string) (DataProvider, error) {
	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("хранилище '%s' не найдено: %w", name, apperrors.ErrNotFound)
	}
	return provider, nil
}

func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.get(name); err != nil {
		return fmt.Errorf("невозможно сделать активным: %w", err)
	}
	r.active = name
	return nil
}

func (r *Registry) GetActive() (DataProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == "" {
		return nil, apperrors.ErrNoActiveProvider
	}
	return r.get(r.active)
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, p := range r.providers {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
