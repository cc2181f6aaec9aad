package extract

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_RejectsNonPDFBytes(t *testing.T) {
	_, err := Text([]byte("this is not a pdf"))
	require.Error(t, err)

	var extractErr *Error
	assert.True(t, errors.As(err, &extractErr))
	assert.Contains(t, extractErr.Error(), "pdf extraction error")
}

func TestText_EmptyInput(t *testing.T) {
	_, err := Text(nil)
	assert.Error(t, err)
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	var extractErr *Error
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, extractErr.Message, "missing.pdf")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &Error{Message: "failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")

	bare := &Error{Message: "failed"}
	assert.Equal(t, "pdf extraction error: failed", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}
