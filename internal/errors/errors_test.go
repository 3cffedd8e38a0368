package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategory(t *testing.T) {
	tests := []struct {
		code     string
		category Category
	}{
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeResourceMissing, CategoryResource},
		{ErrCodePermissionDenied, CategoryResource},
		{ErrCodeVersionIncompatible, CategoryVersion},
		{ErrCodeVersionUnparsable, CategoryVersion},
		{ErrCodeProbeUnsupported, CategoryProbe},
		{ErrCodeSubprocessTimeout, CategorySubprocess},
		{ErrCodeSubprocessCrash, CategorySubprocess},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
		})
	}
}

func TestCheckError_Error(t *testing.T) {
	err := New(ErrCodeResourceMissing, "python3 not found", nil)
	assert.Equal(t, "[ERR_201_RESOURCE_MISSING] python3 not found", err.Error())
}

func TestCheckError_Unwrap(t *testing.T) {
	cause := stderrors.New("exec: not found")
	err := Wrap(ErrCodeResourceMissing, cause)
	require.NotNil(t, err)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeResourceMissing, nil))
}

func TestCheckError_IsMatchesByCode(t *testing.T) {
	a := New(ErrCodeSubprocessTimeout, "slow", nil)
	b := New(ErrCodeSubprocessTimeout, "different message", nil)
	c := New(ErrCodeSubprocessCrash, "crashed", nil)

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, ErrCodeResourceMissing, GetCode(ResourceMissing("gone", nil)))
	assert.Equal(t, CategoryResource, GetCategory(PermissionDenied("denied", nil)))
	assert.True(t, IsTimeout(Timeout("slow", nil)))
	assert.False(t, IsTimeout(ResourceMissing("gone", nil)))

	// Plain errors have neither code nor category.
	assert.Empty(t, GetCode(stderrors.New("plain")))
	assert.Empty(t, GetCategory(stderrors.New("plain")))
	assert.False(t, IsTimeout(nil))
}
