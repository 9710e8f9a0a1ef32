package constants

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusUnknown  = "unknown"
)

// Summary styles accepted by the summarizer backend.
const (
	SummaryComprehensive = "comprehensive"
	SummaryBrief         = "brief"
	SummaryKeyPoints     = "key_points"

	DefaultSummaryType = SummaryComprehensive
)

const (
	DefaultKeyPrefix   = "podcasts"
	MaxUploadFileSize  = 500 * 1024 * 1024 // 500MiB
	UploadFormField    = "podcast"
	StorageDriverS3    = "s3"
	StorageDriverLocal = "local"
	URLModePublic      = "public"
	URLModeSigned      = "signed"
)
