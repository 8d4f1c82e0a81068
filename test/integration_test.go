// ABOUTME: Integration tests for the fittrack CLI.
// ABOUTME: Tests full workflow from CLI commands against a built binary.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "fittrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fittrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use temp data dir; keep config isolated too
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", tmpDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"))
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Register a profile
	output, err := run("profile", "add", "Alice", "--age", "30", "--height", "170", "--weight", "60")
	if err != nil {
		t.Fatalf("Failed to add profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Registered Alice") {
		t.Errorf("Expected 'Registered Alice' in output, got: %s", output)
	}

	// Catalog is seeded on startup
	output, err = run("food", "list")
	if err != nil {
		t.Fatalf("Failed to list foods: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Apple") {
		t.Errorf("Expected 'Apple' in catalog, got: %s", output)
	}

	// Log consumptions (first profile was auto-selected)
	output, err = run("log", "Apple")
	if err != nil {
		t.Fatalf("Failed to log food: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Apple") {
		t.Errorf("Expected 'Logged Apple' in output, got: %s", output)
	}

	output, err = run("log", "Banana", "--qty", "2")
	if err != nil {
		t.Fatalf("Failed to log food with qty: %v\n%s", err, output)
	}

	// Daily summary: 95 + 2*105
	output, err = run("summary")
	if err != nil {
		t.Fatalf("Failed to get summary: %v\n%s", err, output)
	}
	if !strings.Contains(output, "305 kcal") {
		t.Errorf("Expected '305 kcal' total in summary, got: %s", output)
	}

	// Record a run
	output, err = run("route", "add", "5.2", "--point", "41.38879,2.15899")
	if err != nil {
		t.Fatalf("Failed to add route: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Recorded 5.20 km") {
		t.Errorf("Expected 'Recorded 5.20 km' in output, got: %s", output)
	}

	output, err = run("route", "list")
	if err != nil {
		t.Fatalf("Failed to list routes: %v\n%s", err, output)
	}
	if !strings.Contains(output, "5.20 km") {
		t.Errorf("Expected '5.20 km' in route list, got: %s", output)
	}

	// Estimates for the active profile
	output, err = run("estimate", "bmr")
	if err != nil {
		t.Fatalf("Failed to estimate bmr: %v\n%s", err, output)
	}
	if !strings.Contains(output, "kcal/day") {
		t.Errorf("Expected BMR output, got: %s", output)
	}

	// Export roundtrip
	exportFile := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "-o", exportFile)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if _, err := os.Stat(exportFile); err != nil {
		t.Errorf("Expected export file to exist: %v", err)
	}
}
