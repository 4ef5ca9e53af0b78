package optsearch_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/optsearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := optsearch.Errorf(optsearch.ENOTFOUND, "database %q not found", "boards")

	assert.Equal(t, optsearch.ENOTFOUND, optsearch.ErrorCode(err))
	assert.Equal(t, "database \"boards\" not found", optsearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, optsearch.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optsearch.EINTERNAL, optsearch.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, optsearch.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error", optsearch.ErrorMessage(errors.New("boom")))
}
