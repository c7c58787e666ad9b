package integrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitment-form/internal/integrations"
	"recruitment-form/internal/integrations/mock"
	apperrors "recruitment-form/pkg/errors"
)

func TestRegistry_ActiveProvider(t *testing.T) {
	reg := integrations.NewRegistry()

	_, err := reg.GetActive()
	assert.ErrorIs(t, err, apperrors.ErrNoActiveProvider)

	require.NoError(t, reg.Register(mock.NewMockProvider()))
	require.NoError(t, reg.SetActive("mock"))

	p, err := reg.GetActive()
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())
}

func TestRegistry_RejectsDuplicatesAndUnknown(t *testing.T) {
	reg := integrations.NewRegistry()
	require.NoError(t, reg.Register(mock.NewMockProvider()))

	assert.Error(t, reg.Register(mock.NewMockProvider()))
	assert.Error(t, reg.SetActive("bigquery"))

	_, err := reg.Get("bigquery")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

type closingProvider struct {
	*mock.MockProvider
	closed bool
}

func (p *closingProvider) Name() string { return "closing" }

func (p *closingProvider) Close() error {
	p.closed = true
	return nil
}

func TestRegistry_NamesAndClose(t *testing.T) {
	reg := integrations.NewRegistry()
	closing := &closingProvider{MockProvider: mock.NewMockProvider()}
	require.NoError(t, reg.Register(mock.NewMockProvider()))
	require.NoError(t, reg.Register(closing))

	assert.Equal(t, []string{"closing", "mock"}, reg.Names())
	assert.NoError(t, reg.Close())
	assert.True(t, closing.closed)
}
