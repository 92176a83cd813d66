// Command pqshell is an interactive task list backed by a priority queue.
// Tasks are served earliest due date first.
//
// Configuration comes from the environment (optionally loaded from the .env
// or YAML file named by PQSHELL_ENV_FILE):
//   - PQSHELL_SEED: YAML file of tasks to load at start-up
//   - PQ_METRICS_PORT: enable queue metrics and serve them on /metrics
//   - LOG_JSON, LOG_LEVEL, LOG_OUTPUT: see logger.ConfigureLogging
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/amp-labs/amp-pq/cli"
	"github.com/amp-labs/amp-pq/date"
	"github.com/amp-labs/amp-pq/envutil"
	"github.com/amp-labs/amp-pq/internal/shell"
	"github.com/amp-labs/amp-pq/logger"
	"github.com/amp-labs/amp-pq/pqueue"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	errBadPort     = errors.New("port must be between 1 and 65535")
	errBadSeedFile = errors.New("seed file must be .yaml or .yml")
)

// argPrompts lists what to ask for when a command is picked from the menu
// without arguments. Every prompt after the first reads a date.
var argPrompts = map[string][]string{ //nolint:gochecknoglobals
	"insert":   {"Task", "Due (DD/MM/YYYY)"},
	"change":   {"Task", "Current due date", "New due date"},
	"remove":   {"Task"},
	"contains": {"Task"},
}

func main() {
	if err := run(); err != nil { //nolint:noinlineerr
		_, _ = fmt.Fprintln(os.Stderr, "pqshell:", err)

		os.Exit(1)
	}
}

func run() error {
	envFile, err := envutil.FilePath("PQSHELL_ENV_FILE", envutil.Default("")).Value()
	if err != nil {
		return err
	}

	if envFile != "" {
		if err := envutil.Apply(envFile); err != nil { //nolint:noinlineerr
			return err
		}
	}

	if _, err := logger.ConfigureLogging("pqshell"); err != nil { //nolint:noinlineerr
		return err
	}

	sessionID := uuid.New()
	ctx := logger.With(context.Background(), "session", sessionID.String())
	log := logger.Get(logger.WithSubsystem(ctx, "pqshell.tasks"))

	opts := []pqueue.Option{pqueue.WithName("pqshell-" + sessionID.String()[:8])}

	port := envutil.Int("PQ_METRICS_PORT", envutil.Validate(validPort))
	if port.HasError() {
		_, err := port.Value()

		return err
	}

	if port.HasValue() {
		portNum, _ := port.Value()

		stop := serveMetrics(ctx, portNum)
		defer stop()

		opts = append(opts, pqueue.WithMetrics())
	}

	session, err := shell.New(os.Stdout, log, opts...)
	if err != nil {
		return err
	}

	defer session.Close()

	seed := envutil.FilePath("PQSHELL_SEED", envutil.Default(""), envutil.Validate(yamlFile))
	logger.Get(ctx).Debug("configuration", "seed", seed, "metrics", port)

	seedPath, err := seed.Value()
	if err != nil {
		return err
	}

	if seedPath != "" {
		if err := loadSeed(session, seedPath); err != nil { //nolint:noinlineerr
			return err
		}
	}

	return loop(session)
}

func validPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: %d", errBadPort, port)
	}

	return nil
}

func yamlFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("%w: %s", errBadSeedFile, path)
	}
}

func validDate(s string) error {
	_, err := date.Parse(s)

	return err
}

// serveMetrics exposes the Prometheus registry on the given port until the
// returned function is called.
func serveMetrics(ctx context.Context, port int) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	log := logger.Get(ctx)

	go func() {
		log.Info("serving metrics", "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) { //nolint:noinlineerr
			log.Error("metrics server stopped", "error", err)
		}
	}()

	return func() {
		if err := srv.Close(); err != nil { //nolint:noinlineerr
			log.Warn("closing metrics server", "error", err)
		}
	}
}

func loadSeed(session *shell.Session, path string) error {
	entries, err := shell.LoadSeed(path)
	if err != nil {
		return err
	}

	return session.Seed(entries)
}

func loop(session *shell.Session) error {
	for {
		line, err := readCommand()
		if errors.Is(err, cli.ErrClosed) {
			return nil
		}

		if err != nil {
			return err
		}

		if line == "" {
			continue
		}

		if line == "clear" {
			ok, err := cli.PromptConfirm("Drop every task")
			if err != nil {
				return err
			}

			if !ok {
				continue
			}
		}

		err = session.Execute(line)

		switch {
		case errors.Is(err, shell.ErrQuit):
			return nil
		case err != nil:
			logger.Get().Debug("command failed", "line", line, "error", err)

			_, _ = fmt.Fprintf(os.Stdout, "%s: %v\n", pqueue.ResultOf(err), err)
		}
	}
}

// readCommand reads a command line. An empty line opens the command menu,
// and commands picked there have their arguments prompted for one by one.
// Backing out of the menu yields an empty line.
func readCommand() (string, error) {
	line, err := cli.PromptStringEmptyOk("pq")
	if err != nil || line != "" {
		return line, err
	}

	cmd, err := cli.Select("Command", shell.Commands...)
	if errors.Is(err, cli.ErrClosed) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	parts := []string{cmd}

	for i, label := range argPrompts[cmd] {
		var validate func(string) error
		if i > 0 {
			validate = validDate
		}

		arg, err := cli.PromptString(label, validate)
		if errors.Is(err, cli.ErrClosed) {
			return "", nil
		}

		if err != nil {
			return "", err
		}

		parts = append(parts, arg)
	}

	return strings.Join(parts, " "), nil
}
