package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/types"
)

// formatsBySuffix maps each dispatch suffix to its document format
var formatsBySuffix = map[string]types.DocumentFormat{
	constants.SuffixText: types.FormatPlainText,
	constants.SuffixDocx: types.FormatDocx,
	constants.SuffixPDF:  types.FormatPDF,
}

// LoadUploadedFile reads the file at path into an UploadedFile.
// An empty path means no file was selected and yields (nil, nil).
func LoadUploadedFile(path string) (*types.UploadedFile, error) {
	if path == "" {
		return nil, nil
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, WrapError(err, ErrorTypeIO, "error resolving file path")
	}

	stat, err := os.Stat(expanded)
	if err != nil {
		return nil, NewIOError(fmt.Sprintf("input file not accessible: %s", path), err)
	}
	if stat.IsDir() {
		return nil, NewValidationError(fmt.Sprintf("input path is a directory: %s", path), nil)
	}
	if stat.Size() > constants.MaxFileSize {
		return nil, NewValidationError(
			fmt.Sprintf("file size (%d bytes) exceeds maximum limit (%d bytes)",
				stat.Size(), constants.MaxFileSize), nil)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, NewIOError("error reading input file", err)
	}

	return &types.UploadedFile{
		Name: filepath.Base(expanded),
		Data: data,
	}, nil
}

// DetectFormat matches name against the dispatch suffixes. The match is an
// exact, case-sensitive suffix comparison.
func DetectFormat(name string) types.DocumentFormat {
	for _, suffix := range constants.DispatchSuffixes {
		if strings.HasSuffix(name, suffix) {
			return formatsBySuffix[suffix]
		}
	}
	return types.FormatUnknown
}

// GetFileInfo extracts basic information about an uploaded file
func GetFileInfo(file *types.UploadedFile) *types.FileInfo {
	return &types.FileInfo{
		Name:      file.Name,
		Extension: strings.TrimPrefix(filepath.Ext(file.Name), "."),
		Size:      int64(len(file.Data)),
		Format:    DetectFormat(file.Name),
	}
}

// ExpandPath expands environment variables and the user home directory in path
func ExpandPath(path string) (string, error) {
	expanded := os.ExpandEnv(path)

	if strings.HasPrefix(expanded, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}

		if expanded == "~" {
			expanded = homeDir
		} else if strings.HasPrefix(expanded, "~/") {
			expanded = filepath.Join(homeDir, expanded[2:])
		}
	}

	return filepath.Clean(expanded), nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, constants.DefaultDirPermission)
}

// WriteTextFile writes text to path, creating parent directories as needed
func WriteTextFile(path, text string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return WrapError(err, ErrorTypeIO, "error resolving output path")
	}

	if err := EnsureDir(filepath.Dir(expanded)); err != nil {
		return WrapError(err, ErrorTypeIO, "failed to create output directory")
	}

	if err := os.WriteFile(expanded, []byte(text), constants.DefaultFilePermission); err != nil {
		return WrapError(err, ErrorTypeIO, "failed to write output file")
	}
	return nil
}
