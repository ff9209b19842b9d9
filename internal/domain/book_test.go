package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/library-service/internal/domain"
)

func Test_NewBook(t *testing.T) {
	book, err := domain.NewBook("엘리스", domain.CategoryComputer)

	require.NoError(t, err)
	assert.Equal(t, "엘리스", book.Name)
	assert.Equal(t, domain.CategoryComputer, book.Category)
}

func Test_NewBook_TrimsName(t *testing.T) {
	book, err := domain.NewBook("  엘리스  ", domain.CategoryScience)

	require.NoError(t, err)
	assert.Equal(t, "엘리스", book.Name)
}

func Test_NewBook_RejectsBlankName(t *testing.T) {
	for _, name := range []string{"", " ", "\t", "\n  "} {
		_, err := domain.NewBook(name, domain.CategoryComputer)
		assert.Error(t, err)
	}
}

func Test_NewBook_RejectsUnknownCategory(t *testing.T) {
	_, err := domain.NewBook("엘리스", domain.BookCategory("POETRY"))
	assert.Error(t, err)
}

func Test_ParseBookCategory(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.BookCategory
		wantErr  bool
	}{
		{raw: "COMPUTER", expected: domain.CategoryComputer},
		{raw: "economy", expected: domain.CategoryEconomy},
		{raw: " science ", expected: domain.CategoryScience},
		{raw: "SOCIETY", expected: domain.CategorySociety},
		{raw: "LANGUAGE", expected: domain.CategoryLanguage},
		{raw: "POETRY", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range tests {
		category, err := domain.ParseBookCategory(tc.raw)
		if tc.wantErr {
			assert.Error(t, err, "raw=%q", tc.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.expected, category)
	}
}
