package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/config"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/storage"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.Storage.Path = filepath.Join(dir, "moodlog.json")

	store, err := storage.Open("json", cfg.Storage.Path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	var out bytes.Buffer
	ctx := NewContext(cfg, filepath.Join(dir, "config.yaml"), store, time.UTC)
	ctx.Now = func() time.Time { return time.Date(2024, time.March, 14, 19, 30, 0, 0, time.UTC) }
	ctx.Out = &out
	ctx.In = strings.NewReader("")
	return ctx, &out
}

func TestParseDate(t *testing.T) {
	ctx, _ := setupTestContext(t)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "2024-03-14", false},
		{"today", "2024-03-14", false},
		{"Yesterday", "2024-03-13", false},
		{"2024-02-29", "2024-02-29", false},
		{"2024-02-30", "", true},
		{"14/03/2024", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ctx.ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
			}
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidDate) {
					t.Errorf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestInitCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(ctx.ConfigPath); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
	raw, err := ctx.Store.Raw()
	if err != nil || string(raw) != `{"moods":[],"reflections":[]}` {
		t.Errorf("expected an empty record, got (%q, %v)", raw, err)
	}
	if !strings.Contains(out.String(), "Initialized moodlog json storage") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestLogCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&LogCmd{Mood: 4, Date: "today", Note: "dinner"}).Run(ctx); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	data := ctx.Store.Load()
	if len(data.Moods) != 1 {
		t.Fatalf("expected 1 mood, got %d", len(data.Moods))
	}
	if data.Moods[0].TimeOfDay != models.Evening {
		t.Errorf("bucket should default to the current time of day, got %s", data.Moods[0].TimeOfDay)
	}
	if !strings.Contains(out.String(), "Recorded 🙂 Good for 2024-03-14 Evening") {
		t.Errorf("unexpected output: %s", out.String())
	}

	if err := (&LogCmd{Mood: 2, Bucket: "morning", Date: "yesterday"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Store.Load().Moods[1].ID; got != "2024-03-13-morning" {
		t.Errorf("unexpected id %s", got)
	}

	if _, err := os.Stat(filepath.Join(ctx.Config.Dir, "moodlog.lock")); !os.IsNotExist(err) {
		t.Error("lock should be released after the command")
	}
}

func TestLogCmdErrors(t *testing.T) {
	ctx, _ := setupTestContext(t)

	tests := []struct {
		name string
		cmd  LogCmd
		want error
	}{
		{"future", LogCmd{Mood: 3, Date: "2024-03-15"}, ErrFutureDay},
		{"mood out of range", LogCmd{Mood: 9, Date: "today"}, models.ErrInvalidMood},
		{"bad bucket", LogCmd{Mood: 3, Bucket: "noon", Date: "today"}, models.ErrInvalidTimeOfDay},
		{"bad date", LogCmd{Mood: 3, Date: "someday"}, models.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if n := len(ctx.Store.Load().Moods); n != 0 {
		t.Errorf("failed commands must not write, found %d moods", n)
	}
}

func TestReflectCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&ReflectCmd{Note: "quiet evening", Date: "today"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&ReflectCmd{Skip: true, Date: "yesterday"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	data := ctx.Store.Load()
	if len(data.Reflections) != 2 {
		t.Fatalf("expected 2 reflections, got %d", len(data.Reflections))
	}
	if !data.Reflections[0].Completed || data.Reflections[0].Notes != "quiet evening" {
		t.Errorf("unexpected reflection %+v", data.Reflections[0])
	}
	if data.Reflections[1].Completed {
		t.Error("--skip should record an incomplete reflection")
	}
	if !strings.Contains(out.String(), "marked as skipped") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func seed(t *testing.T, ctx *Context) {
	t.Helper()
	entries := []models.MoodEntry{
		models.NewMoodEntry("2024-03-11", models.Morning, 2, ""),
		models.NewMoodEntry("2024-03-14", models.Morning, 4, "coffee"),
		models.NewMoodEntry("2024-03-14", models.Evening, 5, ""),
		models.NewMoodEntry("2024-02-20", models.Afternoon, 2, ""),
	}
	for _, e := range entries {
		if err := ctx.Store.UpsertMood(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := ctx.Store.UpsertReflection(models.NewReflectionEntry("2024-03-14", true, "")); err != nil {
		t.Fatal(err)
	}
}

func TestDayCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	seed(t, ctx)

	if err := (&DayCmd{Date: "today"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"Thursday, March 14 2024", "🙂 Good (4)  coffee", "Afternoon   -", "4.5", "✓ completed"} {
		if !strings.Contains(got, want) {
			t.Errorf("day output missing %q:\n%s", want, got)
		}
	}
}

func TestWeekCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	seed(t, ctx)

	if err := (&WeekCmd{Date: "2024-03-12"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"Week of Mar 11 - Mar 17, 2024", "Mon 03-11", "Sun 03-17", "3.3", "2 of 7"} {
		if !strings.Contains(got, want) {
			t.Errorf("week output missing %q:\n%s", want, got)
		}
	}
}

func TestMonthCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	seed(t, ctx)

	if err := (&MonthCmd{Date: "today"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"March 2024", "Sun   Mon", "You're improving!"} {
		if !strings.Contains(got, want) {
			t.Errorf("month output missing %q:\n%s", want, got)
		}
	}
}

func TestStatsCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	seed(t, ctx)

	if err := (&StatsCmd{Period: "month", Date: "today"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"March 2024", "3.3 ↑", "previous month 2.0", "Reflections:       1 completed", "😄 Very Good"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats output missing %q:\n%s", want, got)
		}
	}
}

func TestBackupCommands(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Nothing to back up") {
		t.Errorf("expected empty journal message, got %s", out.String())
	}

	seed(t, ctx)
	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Backup created: moodlog-") {
		t.Errorf("unexpected output: %s", out.String())
	}

	backups, err := ctx.Backups().ListBackups()
	if err != nil || len(backups) != 1 {
		t.Fatalf("ListBackups = (%v, %v)", backups, err)
	}
	name := filepath.Base(backups[0].Path)

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), name) {
		t.Errorf("list output missing %s: %s", name, out.String())
	}

	// Declining the prompt leaves the journal alone.
	if err := ctx.Store.UpsertMood(models.NewMoodEntry("2024-03-01", models.Morning, 1, "")); err != nil {
		t.Fatal(err)
	}
	ctx.In = strings.NewReader("n\n")
	out.Reset()
	if err := (&BackupRestoreCmd{BackupFile: name}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") || len(ctx.Store.Load().Moods) != 5 {
		t.Errorf("restore should have been cancelled: %s", out.String())
	}

	out.Reset()
	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n := len(ctx.Store.Load().Moods); n != 4 {
		t.Errorf("expected the backup's 4 moods after restore, got %d", n)
	}

	if err := (&BackupRestoreCmd{BackupFile: "missing.json", Yes: true}).Run(ctx); err == nil {
		t.Error("expected an error for a missing backup")
	}
}

func TestDoctorCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	seed(t, ctx)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on a healthy journal: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected a backup warning: %s", out.String())
	}

	if err := ctx.Store.Backend().Write([]byte(`{"moods":[{"id":"x","date":"2024-03-14","timeOfDay":"noon","mood":3}],"reflections":[]}`)); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := (&DoctorCmd{}).Run(ctx); !errors.Is(err, ErrDoctorFailed) {
		t.Errorf("expected ErrDoctorFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "❌ Data validation: FAIL") {
		t.Errorf("expected a validation failure: %s", out.String())
	}

	if err := ctx.Store.Backend().Write([]byte("{broken")); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := (&DoctorCmd{}).Run(ctx); !errors.Is(err, ErrDoctorFailed) {
		t.Errorf("expected ErrDoctorFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "read as an empty journal") {
		t.Errorf("expected a corrupt record report: %s", out.String())
	}
}

func TestDebugCommands(t *testing.T) {
	ctx, out := setupTestContext(t)
	seed(t, ctx)

	if err := (&DebugPathCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"backend": "json"`) {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	if err := (&DebugDumpDayCmd{Date: "2024-03-14"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, `"average": 4.5`) || !strings.Contains(got, `"morning"`) || strings.Contains(got, `"afternoon"`) {
		t.Errorf("unexpected dump: %s", got)
	}
}
