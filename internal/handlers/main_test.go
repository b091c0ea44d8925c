// internal/handlers/main_test.go
package handlers_test // テストパッケージ名は _test サフィックス

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// TestMain はパッケージ内のテストの前に一度だけ実行される。
// ハンドラのテストはモックのサービスを使うので、ここではログを抑えるだけ
func TestMain(m *testing.M) {
	level := slog.LevelError
	if os.Getenv("TEST_VERBOSE_LOG") != "" {
		level = slog.LevelDebug
	}
	var out io.Writer = io.Discard
	if level == slog.LevelDebug {
		out = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))

	os.Exit(m.Run())
}
