package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	o := vector.NewOptions()
	require.Equal(t, vector.DefaultWidth, o.Width())
	require.Equal(t, vector.DefaultSeparator, o.Separator())
}

func TestNewOptionsOrderAndNil(t *testing.T) {
	o := vector.NewOptions(vector.WithWidth(3), nil, vector.WithWidth(6))
	require.Equal(t, 6, o.Width())
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { vector.WithWidth(-1) })
	require.Panics(t, func() { vector.WithSeparator("") })
}
