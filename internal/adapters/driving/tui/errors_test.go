package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingSearchService,
		ErrMissingNavigationService,
		ErrMissingDetailService,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingSearchService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingSearchService.Error(), "search service")
}

func TestErrMissingNavigationService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingNavigationService.Error(), "navigation service")
}

func TestErrMissingDetailService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingDetailService.Error(), "detail service")
}
