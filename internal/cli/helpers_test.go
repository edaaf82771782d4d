package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/config"
	"github.com/awc-hub/awchub/internal/testutil"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// useContent points the CLI globals at dir in JSON mode for the duration of the test.
func useContent(t *testing.T, dir string) {
	t.Helper()
	prevCfg, prevLogger, prevJSON := cfg, logger, jsonOutput
	t.Cleanup(func() {
		cfg, logger, jsonOutput = prevCfg, prevLogger, prevJSON
	})

	cfg = config.Default()
	cfg.ContentDir = dir
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	jsonOutput = true
}

// runJSON runs cmd and parses its JSON envelope.
func runJSON(t *testing.T, cmd *cobra.Command, args ...string) *testutil.CLIResult {
	t.Helper()
	out := captureStdout(t, func() {
		if err := cmd.RunE(cmd, args); err != nil {
			t.Errorf("%s RunE: %v", cmd.Name(), err)
		}
	})
	return testutil.ParseCLIResult(t, []byte(out))
}

type listData struct {
	Kind  string `json:"kind"`
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

func (d listData) ids() []string {
	ids := make([]string, len(d.Items))
	for i, item := range d.Items {
		ids[i] = item.ID
	}
	return ids
}
