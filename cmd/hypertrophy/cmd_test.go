// ABOUTME: Tests for CLI helpers and end-to-end command execution.
// ABOUTME: Runs commands against a temporary SQLite data directory.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/spf13/cobra"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{name: "needs padding", input: "hi", length: 5, want: "hi   "},
		{name: "exact length", input: "hello", length: 5, want: "hello"},
		{name: "longer than length", input: "hello world", length: 5, want: "hello world"},
		{name: "empty string", input: "", length: 3, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestDescribeTarget(t *testing.T) {
	roster := models.NewInitialState(models.DayA).Exercises

	tests := []struct {
		name string
		ex   models.Exercise
		want string
	}{
		{name: "weight", ex: roster[0], want: "22.5 kg × 11"},
		{name: "reps", ex: roster[1], want: "15 reps"},
		{name: "time", ex: roster[5], want: "30s hold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describeTarget(tt.ex, 22.5, 11, models.UnitKg); got != tt.want {
				t.Errorf("describeTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "hypertrophy" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "hypertrophy")
	}
	for _, name := range []string{"backend", "data-dir", "program"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"status", "targets", "workout", "history", "exercise", "user", "export", "import", "reset", "migrate", "sync", "mcp"}

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range want {
		if !names[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestStorageCommandsSkipStore(t *testing.T) {
	for _, cmd := range append([]*cobra.Command{migrateCmd}, syncCmd.Commands()...) {
		if cmd.Annotations[skipStoreAnnotation] != "true" {
			t.Errorf("Expected %q to manage its own storage", cmd.CommandPath())
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	expected := map[string]bool{"json": false, "yaml": false, "markdown": false}
	for _, arg := range exportCmd.ValidArgs {
		expected[arg] = true
	}
	for arg, found := range expected {
		if !found {
			t.Errorf("Expected valid arg %q for exportCmd", arg)
		}
	}
}

// newREPLController builds a controller over an in-memory store.
func newREPLController(t *testing.T) (*session.Controller, *storage.StateStore) {
	t.Helper()
	states := storage.NewStateStore(storage.NewMemoryStore(), nil)
	return session.New(states.Load(), states), states
}

func TestRunWorkoutFullDay(t *testing.T) {
	color.NoColor = true
	c, states := newREPLController(t)

	input := strings.Repeat("done\n", 6) + "finish\n"
	var out bytes.Buffer
	if err := runWorkout(c, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runWorkout failed: %v", err)
	}

	if !strings.Contains(out.String(), "All sets done") {
		t.Errorf("Expected completion hint, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Workout saved (6 sets") {
		t.Errorf("Expected save summary, got:\n%s", out.String())
	}

	saved := states.Load()
	if saved == nil {
		t.Fatal("Expected state to be persisted")
	}
	if len(saved.WorkoutHistory) != 1 {
		t.Fatalf("Expected 1 workout in history, got %d", len(saved.WorkoutHistory))
	}
	if saved.Program.CurrentDay != models.DayB {
		t.Errorf("Expected day B next, got %s", saved.Program.CurrentDay)
	}
}

func TestRunWorkoutOverrides(t *testing.T) {
	color.NoColor = true
	c, _ := newREPLController(t)

	input := "weight 24\ndone 25 8\nreps 12\ndone\nbogus\ncancel\n"
	var out bytes.Buffer
	if err := runWorkout(c, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runWorkout failed: %v", err)
	}

	if got := c.State().ExerciseByID(1).CurrentWeight; got != 25 {
		t.Errorf("Expected squat current weight 25, got %g", got)
	}
	if got := c.State().ExerciseByID(2).CurrentReps; got != 12 {
		t.Errorf("Expected push-up reps 12, got %d", got)
	}
	if !strings.Contains(out.String(), `unknown command "bogus"`) {
		t.Errorf("Expected unknown command error, got:\n%s", out.String())
	}
	if c.IsActive() {
		t.Error("Expected workout to be cancelled")
	}
	if len(c.State().WorkoutHistory) != 0 {
		t.Error("Cancelled workout must not be saved")
	}
}

func TestRunWorkoutEOFDiscards(t *testing.T) {
	color.NoColor = true
	c, _ := newREPLController(t)

	var out bytes.Buffer
	if err := runWorkout(c, strings.NewReader("done\n"), &out); err != nil {
		t.Fatalf("runWorkout failed: %v", err)
	}
	if c.IsActive() {
		t.Error("Expected workout to be discarded at end of input")
	}
	if !strings.Contains(out.String(), "workout discarded") {
		t.Errorf("Expected discard notice, got:\n%s", out.String())
	}
}

// setupTestCLI points config and data at temp dirs and returns the data dir.
func setupTestCLI(t *testing.T) string {
	t.Helper()
	color.NoColor = true

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv("HYPERTROPHY_BACKEND", "sqlite")

	dataDir := filepath.Join(tmp, "data", "hypertrophy")
	flagBackend, flagDataDir, flagProgram = "", "", ""
	userName, userUnit = "", ""
	exportOutput, exportSince = "", ""
	resetYes = false
	historyLimit = 20
	return dataDir
}

func executeCommand(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func loadSaved(t *testing.T, dataDir string) *models.WorkoutState {
	t.Helper()
	db, err := storage.Open(filepath.Join(dataDir, "hypertrophy.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()
	return storage.NewStateStore(db, nil).Load()
}

func TestCLIWorkflow(t *testing.T) {
	dataDir := setupTestCLI(t)

	out := executeCommand(t, "", "status")
	if !strings.Contains(out, "Week 1 of 12 · Day A") {
		t.Errorf("Unexpected status output:\n%s", out)
	}

	executeCommand(t, strings.Repeat("done\n", 6)+"finish\n", "workout")

	saved := loadSaved(t, dataDir)
	if saved == nil || len(saved.WorkoutHistory) != 1 {
		t.Fatalf("Expected one saved workout, got %+v", saved)
	}
	if saved.Program.CurrentDay != models.DayB {
		t.Errorf("Expected day B, got %s", saved.Program.CurrentDay)
	}

	out = executeCommand(t, "", "history")
	if !strings.Contains(out, saved.WorkoutHistory[0].ShortID()) {
		t.Errorf("Expected history to list the workout, got:\n%s", out)
	}

	out = executeCommand(t, "", "history", "show", saved.WorkoutHistory[0].ShortID())
	if !strings.Contains(out, "Dumbbell Goblet Squat") {
		t.Errorf("Expected session detail, got:\n%s", out)
	}

	executeCommand(t, "", "user", "--name", "Sam", "--unit", "lbs")
	executeCommand(t, "", "exercise", "base-weight", "3", "30")

	saved = loadSaved(t, dataDir)
	if saved.User.Name != "Sam" || saved.User.Unit != models.UnitLbs {
		t.Errorf("Unexpected user: %+v", saved.User)
	}
	if ex := saved.ExerciseByID(3); ex.BaseWeight != 30 || ex.CurrentWeight != 30 {
		t.Errorf("Unexpected exercise 3: %+v", ex)
	}
}

func TestCLIExportImport(t *testing.T) {
	dataDir := setupTestCLI(t)
	backup := filepath.Join(t.TempDir(), "backup.json")

	executeCommand(t, "", "user", "--name", "Alex")
	executeCommand(t, "", "export", "json", "-o", backup)
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("Expected backup file: %v", err)
	}

	executeCommand(t, "", "reset", "--yes")
	if saved := loadSaved(t, dataDir); saved.User.Name != "Lifter" {
		t.Errorf("Expected reset user, got %q", saved.User.Name)
	}

	executeCommand(t, "", "import", backup)
	if saved := loadSaved(t, dataDir); saved.User.Name != "Alex" {
		t.Errorf("Expected imported user, got %q", saved.User.Name)
	}
}

func TestCLIResetNeedsConfirmation(t *testing.T) {
	dataDir := setupTestCLI(t)

	executeCommand(t, "", "user", "--name", "Kim")
	out := executeCommand(t, "no\n", "reset")
	if !strings.Contains(out, "Canceled.") {
		t.Errorf("Expected cancel, got:\n%s", out)
	}
	if saved := loadSaved(t, dataDir); saved.User.Name != "Kim" {
		t.Errorf("Reset ran without confirmation")
	}
}
