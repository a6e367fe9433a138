package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := InvalidRequest("Invalid request: no cover has been requested!")
		assert.Equal(t, "[INVALID_REQUEST] Invalid request: no cover has been requested!", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("unexpected token")
		err := Parsing("failed to parse request.hcl", cause)
		assert.Equal(t, "[PARSING_ERROR] failed to parse request.hcl: unexpected token", err.Error())
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestIsType(t *testing.T) {
	err := InvalidRequestf("Invalid named item request: section [%s] invalid!", "Tools")

	assert.True(t, IsType(err, TypeInvalidRequest))
	assert.False(t, IsType(err, TypeParsing))
	assert.True(t, err.Is(TypeInvalidRequest))

	wrapped := fmt.Errorf("quote failed: %w", err)
	assert.True(t, IsType(wrapped, TypeInvalidRequest))

	assert.False(t, IsType(fmt.Errorf("plain"), TypeInvalidRequest))
	assert.False(t, IsType(nil, TypeInvalidRequest))
}

func TestWithContext(t *testing.T) {
	err := Parsing("bad document", nil).WithContext("file", "request.hcl").WithContext("line", 3)

	assert.Equal(t, "request.hcl", err.Context["file"])
	assert.Equal(t, 3, err.Context["line"])
}
