package constants

// Application constants
const (
	AppName = "doc-translate"
	// Note: AppVersion is managed via build-time ldflags injection in main.go
	// Use cmd.GetVersionInfo() to get the current version at runtime
)

// File processing constants
const (
	// Default file permissions
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	// Separators used when assembling PDF text
	PDFItemSeparator = " "
	PDFPageSeparator = "\n"
)

// Recognized file name suffixes, matched case-sensitively in this order
const (
	SuffixText = ".txt"
	SuffixDocx = ".docx"
	SuffixPDF  = ".pdf"
)

// DispatchSuffixes is the fixed dispatch order of the file dispatcher
var DispatchSuffixes = []string{SuffixText, SuffixDocx, SuffixPDF}

// Translation defaults
const (
	DefaultEndpoint       = "https://translation.googleapis.com/language/translate/v2"
	DefaultSourceLanguage = "am"
	DefaultTargetLanguage = "en"
	DefaultFormat         = "text"
	FormatHTML            = "html"

	// Query parameter carrying the API key
	APIKeyParam = "key"

	// ContentTypeJSON is sent with every translation request
	ContentTypeJSON = "application/json"
)

// File size limits (in bytes)
const (
	MaxFileSize       = 100 * 1024 * 1024 // 100MB
	WarnFileSizeLimit = 10 * 1024 * 1024  // 10MB
)

// Text preview
const (
	PreviewLength = 200
)

// User-facing messages
const (
	MsgNoFile = "Please upload a file"
)
