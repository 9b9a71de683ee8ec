package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("Failed to get data directory: %v", err)
	}

	if dataDir == "" {
		t.Fatal("Data directory is empty")
	}

	if filepath.Base(dataDir) != AppDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", AppDirName, dataDir)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := DefaultConfigPath("config.yaml")
	if err != nil {
		t.Fatalf("Failed to get config path: %v", err)
	}

	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected file name 'config.yaml', got: %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != AppDirName {
		t.Errorf("Expected config inside '%s', got: %s", AppDirName, path)
	}
}

func TestOpenDirectory_NonExistent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	err := OpenDirectory(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent directory, got nil")
	}

	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Error message should contain 'directory does not exist', got: %v", err)
	}
}
