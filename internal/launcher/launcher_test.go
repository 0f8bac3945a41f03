package launcher

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
	"google.golang.org/grpc"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

// blockingComponent runs until its context is done.
func blockingComponent(name string) Component {
	return Component{Name: name, Run: func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}}
}

func failingComponent(name string) Component {
	return Component{Name: name, Run: func(ctx context.Context) error {
		return errors.New("component error")
	}}
}

func TestLaunch(t *testing.T) {
	logger := logging.NewTestLogger(slog.LevelError, true)

	testCases := []struct {
		name                string
		closeListener       bool
		components          []Component
		cancelAfter         time.Duration
		expectedLaunchError bool
	}{
		{
			name:                "success: shutdown on context cancellation",
			components:          []Component{blockingComponent("worker")},
			cancelAfter:         50 * time.Millisecond,
			expectedLaunchError: false,
		},
		{
			name:                "error: component failure triggers shutdown",
			components:          []Component{blockingComponent("worker"), failingComponent("broken")},
			expectedLaunchError: true,
		},
		{
			name:                "error: server failure triggers shutdown",
			closeListener:       true, // listener closed -> Serve error
			components:          []Component{blockingComponent("worker")},
			expectedLaunchError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			lis := listen(t)
			if tc.closeListener {
				lis.Close()
			}
			if tc.cancelAfter > 0 {
				time.AfterFunc(tc.cancelAfter, cancel)
			}

			resultChan := make(chan error, 1)
			go func() {
				resultChan <- Launch(ctx, logger, grpc.NewServer(), lis, 2*time.Second, tc.components...)
			}()

			select {
			case err := <-resultChan:
				if tc.expectedLaunchError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Launch did not return within expected time")
			}
		})
	}
}

func TestHTTPComponent(t *testing.T) {
	lis := listen(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("pong")) })
	c := HTTPComponent("metrics", &http.Server{Handler: mux}, lis, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("HTTP component did not stop")
	}
}
