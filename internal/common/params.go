package common

// Logging params
const (
	// Interceptor mostly uses these
	LogMethod    = "method"
	LogTimestamp = "timestamp"
	LogStatus    = "grpc_status"
	LogDuration  = "duration"
	LogRequestID = "request_id"

	// General, used across the board
	LogError     = "error"
	LogOperation = "operation"
	LogService   = "service"
	LogDetails   = "details"

	// Catalog
	LogCatalogID  = "catalog_id"
	LogFilePath   = "file_path"
	LogFileName   = "file_name"
	LogFileSize   = "file_size"
	LogFilter     = "filter"
	LogNumFiles   = "num_files"
	LogRemoved    = "removed"
	LogRecovered  = "recovered"
	LogFreeSpace  = "free_space"
	LogUsedSpace  = "used_space"
	LogDeleted    = "deleted"
	LogFragmented = "fragmentation"
)

// Operation names used for operation scoped loggers
const (
	OpCreate     = "create"
	OpDelete     = "delete"
	OpRecover    = "recover"
	OpList       = "list"
	OpOptimize   = "optimize"
	OpUsage      = "usage"
	OpScan       = "scan"
	OpRecoverAll = "recover_all"
	OpAnalyze    = "analyze"
	OpCompaction = "compaction"
)

// Component names
const (
	ComponentServer     = "catalog-server"
	ComponentController = "compaction-controller"
	ComponentCLI        = "cli"
)
