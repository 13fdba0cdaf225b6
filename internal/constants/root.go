package constants

import "time"

const (
	AppName           = "moodlog"
	DefaultConfigDir  = "~/.config/moodlog"
	DefaultConfigFile = "config.yaml"
	Version           = "v0.1.0"

	// StorageKey names the single durable slot that holds the whole record.
	StorageKey = "neko-neko-data"

	// Lock constants
	LockfileName = "moodlog.lock"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "moodlog-"
	BackupFileSuffix = ".json"

	// TimeOfDayPollInterval is how often a running session re-samples the wall clock bucket.
	TimeOfDayPollInterval = 15 * time.Minute

	// WatchDebounce coalesces bursts of file events from a single external write.
	WatchDebounce = 200 * time.Millisecond
)
