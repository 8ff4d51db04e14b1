package app

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRun_ShutsDownOnContextCancel(t *testing.T) {
	setTestEnv(t)
	t.Setenv("PORT", strconv.Itoa(freePort(t)))

	ctx, cancel := context.WithCancel(context.Background())
	container := MustBuildContainer(ctx)

	done := make(chan error, 1)
	go func() {
		done <- run(container)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after context cancellation")
	}
}

func TestRun_MissingConfig_ReturnsError(t *testing.T) {
	resetFlags(t)
	t.Setenv("RAPIDSHYP_API_KEY", "")

	container := MustBuildContainer(context.Background())
	require.Error(t, run(container))
}
