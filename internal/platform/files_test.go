package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "Downloads")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", DownloadsDirName, downloadsDir)
	}
}

func TestWorkingDownloadsDir(t *testing.T) {
	dir, err := WorkingDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get working downloads directory: %v", err)
	}

	wd, _ := os.Getwd()
	if dir != filepath.Join(wd, DownloadsDirName) {
		t.Errorf("Expected %s, got %s", filepath.Join(wd, DownloadsDirName), dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()

	if err := OpenFileInManager(filepath.Join(tempDir, "nonexistent.mp4")); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestFindDownloadedFile(t *testing.T) {
	tempDir := t.TempDir()

	write := func(name string) string {
		p := filepath.Join(tempDir, name)
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	exact := write("Exact Title.mp4")
	write("Recoded Title.mkv")
	recodedMP4 := write("Recoded Title.mp4")
	write("Only Partial.mp4.part")
	write("Other Ext.webm")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "exact match", path: exact, want: exact},
		{name: "prefers mp4 when extension changed", path: filepath.Join(tempDir, "Recoded Title.webm"), want: recodedMP4},
		{name: "finds different extension", path: filepath.Join(tempDir, "Other Ext.mp4"), want: filepath.Join(tempDir, "Other Ext.webm")},
		{name: "ignores partial files", path: filepath.Join(tempDir, "Only Partial.mp4"), wantErr: true},
		{name: "empty path", path: "", wantErr: true},
		{name: "url instead of path", path: "https://youtube.com/watch?v=1", wantErr: true},
		{name: "missing directory", path: filepath.Join(tempDir, "missing", "a.mp4"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindDownloadedFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got path %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIsPartialFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"video.mp4.part", true},
		{"video.f137.mp4.ytdl", true},
		{"video.temp", true},
		{"video.mp4", false},
		{"partial video.mp4", false},
	}

	for _, test := range tests {
		if got := IsPartialFile(test.name); got != test.expected {
			t.Errorf("IsPartialFile(%q) = %v, expected %v", test.name, got, test.expected)
		}
	}
}
