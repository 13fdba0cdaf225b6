package constants

const (
	// Storage backends
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"

	// Default Settings Values
	DefaultBackend  = BackendJSON
	DefaultTimezone = "Local" // Use system local timezone by default

	// File names inside the config directory per backend
	DefaultJSONFile   = "moodlog.json"
	DefaultSQLiteFile = "moodlog.db"
	DefaultBadgerDir  = "moodlog.badger"

	// Environment overrides
	EnvBackend  = "MOODLOG_BACKEND"
	EnvPath     = "MOODLOG_PATH"
	EnvTimezone = "MOODLOG_TZ"
	EnvDebug    = "MOODLOG_DEBUG"
)
