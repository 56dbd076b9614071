package core

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/julien-sobczak/zenpad/pkg/clock"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	configOnce = sync.Once{}
	configSingleton = nil
	loggerOnce = sync.Once{}
	sharedLogger = nil
}

/* Fixtures */

// SetUpConfigFromContent writes a config file in a temp directory,
// points $ZENPAD_CONFIG to it and resets the singletons.
func SetUpConfigFromContent(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ZENPAD_CONFIG", path)
	Reset()
	t.Cleanup(Reset)
	return path
}

/* Reproducible Tests */

// FreezeNow wraps the clock API to register the cleanup function at the end of the test.
func FreezeNow(t *testing.T) time.Time {
	now := clock.Freeze()
	t.Cleanup(clock.Unfreeze)
	return now.Now()
}

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) time.Time {
	now := clock.FreezeAt(point)
	t.Cleanup(clock.Unfreeze)
	return now.Now()
}
