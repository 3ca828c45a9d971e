package affinity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	err := NewShapeError("PointsFromRows", "row 3 has 1 coordinates, want 2")
	assert.Equal(t,
		"affinity Shape error in PointsFromRows: row 3 has 1 coordinates, want 2",
		err.Error())

	wrapped := NewExecutionError("Harness.Run", "scalar failed at size 8", errors.New("boom"))
	assert.Contains(t, wrapped.Error(), "caused by: boom")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewExecutionError("Op", "msg", cause)
	assert.ErrorIs(t, err, cause)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindExecution, e.Kind)
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsShapeError(NewShapeError("Op", "msg")))
	assert.False(t, IsShapeError(NewInvalidArgError("Op", "msg")))
	assert.False(t, IsShapeError(fmt.Errorf("plain")))

	assert.True(t, IsInvalidArgError(ErrNilPoints))
	assert.True(t, IsInvalidArgError(ErrNegativeCount))
	assert.False(t, IsInvalidArgError(NewDeviceError("Op", "msg")))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "Shape", KindShape.String())
	assert.Equal(t, "InvalidArgument", KindInvalidArg.String())
	assert.Equal(t, "Execution", KindExecution.String())
	assert.Equal(t, "Device", KindDevice.String())
	assert.Equal(t, "Unknown", ErrorKind(42).String())
}
