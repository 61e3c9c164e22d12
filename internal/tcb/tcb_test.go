package tcb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenthread-go/greenthread/internal/tcb"
)

// TestNewBlockStartsReady also covers stack-size-mismatch rejection in
// the same test function: regionSizeLog2 is fixed process-wide by the
// first Block any test in this package constructs, so a later test
// asserting on "the first call" would really be asserting on whichever
// test happened to run first.
func TestNewBlockStartsReady(t *testing.T) {
	b, err := tcb.New(16*1024, func() any { return 42 }, 0)
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	require.Equal(t, tcb.Ready, b.Tag())
	require.NoError(t, b.CheckCanary())

	require.Panics(t, func() {
		_, _ = tcb.New(32*1024, func() any { return nil }, 0)
	})

	c, err := tcb.New(16*1024, func() any { return nil }, 0)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()
}

func TestTagString(t *testing.T) {
	require.Equal(t, "ready", tcb.Ready.String())
	require.Equal(t, "running", tcb.Running.String())
	require.Equal(t, "exited", tcb.Exited.String())
	require.Equal(t, "invalid", tcb.Invalid.String())
}

func TestCanaryErrorMessageNamesBothValues(t *testing.T) {
	err := &tcb.CanaryError{Want: 0x1, Got: 0x2}
	require.Contains(t, err.Error(), "0x1")
	require.Contains(t, err.Error(), "0x2")
}
