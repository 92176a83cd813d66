package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/amp-labs/amp-pq/date"
	"github.com/amp-labs/amp-pq/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPort(t *testing.T) {
	t.Parallel()

	require.NoError(t, validPort(9090))
	require.ErrorIs(t, validPort(0), errBadPort)
	require.ErrorIs(t, validPort(70000), errBadPort)
}

func TestYAMLFile(t *testing.T) {
	t.Parallel()

	require.NoError(t, yamlFile(""))
	require.NoError(t, yamlFile("/tmp/seed.YAML"))
	require.NoError(t, yamlFile("seed.yml"))
	require.ErrorIs(t, yamlFile("seed.json"), errBadSeedFile)
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validDate("10/05/2026"))
	require.ErrorIs(t, validDate("10/05/2026x"), date.ErrInvalidDate)
}

func TestServeMetrics(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := lis.Addr().(*net.TCPAddr).Port //nolint:forcetypeassert
	require.NoError(t, lis.Close())

	q, err := pqueue.New(pqueue.ValueBehaviors[string, int](), pqueue.WithName(t.Name()), pqueue.WithMetrics())
	require.NoError(t, err)
	require.NoError(t, q.Insert("a", 1))

	stop := serveMetrics(context.Background(), port)
	defer stop()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/metrics"

	var body string

	require.Eventually(t, func() bool {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
		if err != nil {
			return false
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}

		body = string(data)

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	assert.Contains(t, body, `pqueue_entries_inserted_total{queue="TestServeMetrics"} 1`)
}
