package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, ErrCodeStorageIO, "cannot write data file")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "STORAGE_IO_ERROR")
	assert.Contains(t, err.Error(), "disk full")
}

func TestHasCode_ThroughChain(t *testing.T) {
	inner := New(ErrCodeNoDataFile, "no data file to back up")
	wrapped := fmt.Errorf("backup: %w", inner)

	assert.True(t, HasCode(wrapped, ErrCodeNoDataFile))
	assert.False(t, HasCode(wrapped, ErrCodeMalformedData))

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}
