package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/moodlog/internal/storage"
	"github.com/julianstephens/moodlog/internal/utils"
)

// ErrDoctorFailed is returned when at least one health check fails.
var ErrDoctorFailed = errors.New("one or more health checks failed")

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	report := func(name string, err error, warnOnly bool) {
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", name)
		case warnOnly:
			ctx.printf("⚠ %s: WARNING\n", name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("❌ %s: FAIL\n", name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
		}
	}
	skip := func(name, why string) {
		ctx.printf("⊘ %s: SKIPPED (%s)\n", name, why)
	}

	// Check 1: storage reachable
	raw, readErr := ctx.Store.Raw()
	report("Storage reachable", readErr, false)

	// Check 2: schema version, for backends that have one
	if checker, ok := ctx.Store.Backend().(storage.SchemaChecker); ok {
		if readErr != nil {
			skip("Schema version", "storage not reachable")
		} else {
			report("Schema version", checker.CheckSchema(), false)
		}
	}

	// Check 3 and 4: record parses and entries are valid
	switch {
	case readErr != nil:
		skip("Record format", "storage not reachable")
		skip("Data validation", "storage not reachable")
	case raw == nil:
		report("Record format", nil, false)
		skip("Data validation", "journal is empty")
	default:
		data, err := storage.Decode(raw)
		if err != nil {
			report("Record format", fmt.Errorf("%w; it will be read as an empty journal", err), false)
			skip("Data validation", "record not parseable")
			break
		}
		report("Record format", nil, false)

		_, problems := storage.Sanitize(data)
		if len(problems) > 0 {
			report("Data validation", fmt.Errorf("%d entries would be dropped on load: %w", len(problems), errors.Join(problems...)), false)
		} else {
			report("Data validation", nil, false)
		}
	}

	// Check 5: backups present (warning only)
	backups, err := ctx.Backups().ListBackups()
	if err == nil && len(backups) == 0 {
		err = fmt.Errorf("no backups found in %s", ctx.Backups().GetBackupDir())
	}
	report("Backups present", err, true)

	// Check 6: clock/timezone sanity
	report("Clock/timezone", checkClockTimezone(ctx), false)

	ctx.println()
	if hasError {
		return ErrDoctorFailed
	}
	ctx.println("All checks passed.")
	return nil
}

func checkClockTimezone(ctx *Context) error {
	if _, err := utils.NowInTimezone(ctx.Config.Timezone); err != nil {
		return err
	}
	now := ctx.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}
