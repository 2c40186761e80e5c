// Package util holds helpers shared by the end-to-end tests: polling an HTTP
// endpoint until it answers and starting a throwaway Mosquitto broker.
package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	ServerTimeout         = 5 * time.Second
	MosquittoReadyTimeout = 5 * time.Second
	MetricTimeout         = 5 * time.Second

	pollInterval = 50 * time.Millisecond
)

// poll calls ready until it reports true or ctx is done.
func poll(ctx context.Context, what string, ready func() bool) error {
	for !ready() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", what, ctx.Err())
		case <-time.After(pollInterval):
		}
	}
	return nil
}

func get(ctx context.Context, url string) (int, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, ""
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, ""
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// WaitForHTTP waits until url answers with 200.
func WaitForHTTP(ctx context.Context, url string) error {
	return poll(ctx, "server not ready", func() bool {
		code, _ := get(ctx, url)
		return code == http.StatusOK
	})
}

// WaitForMetric waits until the metrics page at url contains substr.
func WaitForMetric(ctx context.Context, url, substr string) error {
	return poll(ctx, fmt.Sprintf("metric %q not found", substr), func() bool {
		_, body := get(ctx, url)
		return strings.Contains(body, substr)
	})
}

const mosquittoConf = "listener 1883\nallow_anonymous true\npersistence false\n"

// StartMosquitto runs an anonymous Mosquitto broker in Docker and returns its
// URL and a cleanup function.
func StartMosquitto(ctx context.Context) (string, func(), error) {
	cont, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "eclipse-mosquitto:2.0",
			ExposedPorts: []string{"1883/tcp"},
			WaitingFor:   wait.ForListeningPort("1883/tcp"),
			Files: []tc.ContainerFile{{
				Reader:            strings.NewReader(mosquittoConf),
				ContainerFilePath: "/mosquitto/config/mosquitto.conf",
				FileMode:          0o644,
			}},
		},
		Started: true,
	})
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = cont.Terminate(context.Background()) }

	endpoint, err := cont.PortEndpoint(ctx, "1883/tcp", "tcp")
	if err != nil {
		cleanup()
		return "", nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, MosquittoReadyTimeout)
	defer cancel()
	opts := paho.NewClientOptions().AddBroker(endpoint).SetClientID("readiness")
	err = poll(waitCtx, "mosquitto not ready", func() bool {
		cli := paho.NewClient(opts)
		tok := cli.Connect()
		tok.Wait()
		if tok.Error() != nil {
			return false
		}
		cli.Disconnect(100)
		return true
	})
	if err != nil {
		cleanup()
		return "", nil, err
	}
	return endpoint, cleanup, nil
}
