package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := FetchFailed("https://example.com", stderrors.New("connection refused"))
	wrapped := Wrap(inner, "decode failed")

	assert.Equal(t, CodeFetchFailed, GetCode(wrapped))
	assert.True(t, HasCode(wrapped, CodeFetchFailed))
	assert.ErrorIs(t, wrapped, inner)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(stderrors.New("boom"), "context")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "context: boom", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", NoData("nothing"))
	assert.Equal(t, CodeNoData, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.False(t, HasCode(nil, CodeNoData))
}
