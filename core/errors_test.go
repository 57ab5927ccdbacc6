package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(ECONTRACT, "unknown marker %q", '!')
	assert.Equal(t, ECONTRACT, Code(err))
	assert.True(t, IsContractViolation(err))
	assert.False(t, IsUnimplemented(err))
	assert.Equal(t, `unknown marker '!'`, UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWrapErrorKeepsChain(t *testing.T) {
	sentinel := errors.New("script node")
	err := WrapError(sentinel, EUNIMPLEMENTED, "handled by widget integration")
	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, IsUnimplemented(err))
	assert.Contains(t, err.Error(), "[125]")
	assert.Contains(t, err.Error(), "handled by widget integration")
}

func TestForeignErrorIsInternal(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, EINTERNAL, Code(err))
	assert.Equal(t, "internal error", UserMessage(err))
	assert.Equal(t, EINVALID, Code(ErrorWithCode(nil, EINVALID)))
}
