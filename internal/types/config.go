package types

// StorageMode selects the key-value backend for the bill collection
type StorageMode string

const (
	// StorageModeFile persists bills to a JSON file on disk
	StorageModeFile StorageMode = "file"
	// StorageModeMemory keeps bills in process memory only
	StorageModeMemory StorageMode = "memory"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
