package types

// DocumentFormat identifies the extraction strategy selected for a file
type DocumentFormat string

const (
	FormatPlainText DocumentFormat = "text"
	FormatDocx      DocumentFormat = "docx"
	FormatPDF       DocumentFormat = "pdf"
	FormatUnknown   DocumentFormat = "unknown"
)

// UploadedFile is the byte blob handed to the pipeline. Name is only used
// to pick the extraction strategy.
type UploadedFile struct {
	Name string
	Data []byte
}

// FileInfo contains basic information about an uploaded file
type FileInfo struct {
	Name      string         `json:"name"`
	Extension string         `json:"extension"`
	Size      int64          `json:"size"`
	Format    DocumentFormat `json:"format"`
}
