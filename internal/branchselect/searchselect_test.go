package branchselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "recruitment-form/pkg/errors"
)

func sampleOptions() []Option {
	return []Option{
		{Value: "BKK01", Text: "กรุงเทพฯ - สีลม", Code: "BKK01"},
		{Value: "BKK02", Text: "กรุงเทพฯ - สุขุมวิท", Code: "BKK02"},
		{Value: "PKT01", Text: "ภูเก็ต", Code: "PKT01"},
	}
}

func TestSearchSelect_RejectsUnknownValue(t *testing.T) {
	s := NewSearchSelect()
	s.SetOptions(sampleOptions())
	require.NoError(t, s.Choose("PKT01"))

	err := s.Choose("typed by hand")

	assert.ErrorIs(t, err, apperrors.ErrUnknownOption)
	assert.Equal(t, "PKT01", s.Value())
}

func TestSearchSelect_NotifiesListeners(t *testing.T) {
	s := NewSearchSelect()
	s.SetOptions(sampleOptions())
	var seen []string
	s.OnChange(func(v string) { seen = append(seen, v) })

	require.NoError(t, s.Choose("BKK02"))
	s.Clear()

	assert.Equal(t, []string{"BKK02", ""}, seen)
}

func TestSearchSelect_SetOptionsDropsStaleValue(t *testing.T) {
	s := NewSearchSelect()
	s.SetOptions(sampleOptions())
	require.NoError(t, s.Choose("PKT01"))

	s.SetOptions(sampleOptions()[:2])

	assert.Empty(t, s.Value())
}

func TestSearchSelect_Search(t *testing.T) {
	s := NewSearchSelect()
	s.SetOptions(sampleOptions())

	assert.Len(t, s.Search(""), 3)

	byCode := s.Search("bkk")
	require.Len(t, byCode, 2)
	assert.Equal(t, "BKK01", byCode[0].Value)
	assert.Equal(t, "BKK02", byCode[1].Value)

	byText := s.Search("ภูเก็ต")
	require.Len(t, byText, 1)
	assert.Equal(t, "PKT01", byText[0].Value)

	assert.Empty(t, s.Search("zzz"))
}

func TestOption_Label(t *testing.T) {
	assert.Equal(t, "ภูเก็ต (PKT01)", Option{Text: "ภูเก็ต", Code: "PKT01"}.Label())
	assert.Equal(t, "ภูเก็ต", Option{Text: "ภูเก็ต"}.Label())
}
