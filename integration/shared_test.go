//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBeaconPath holds the path to a shared beacon binary built once for all tests.
	sharedBeaconPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBeaconBinary returns the path to the beacon binary, building it once if needed.
func getBeaconBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "beacon-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		beaconPath := filepath.Join(tempDir, "beacon")
		buildCmd := exec.Command("go", "build", "-o", beaconPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build beacon: %v", err))
		}

		sharedBeaconPath = beaconPath
	})

	return sharedBeaconPath
}

// runBeaconCommand runs the shared binary from the project root and returns
// its combined output.
func runBeaconCommand(t *testing.T, args ...string) (string, error) {
	beaconPath := getBeaconBinary()
	cmd := exec.Command(beaconPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
