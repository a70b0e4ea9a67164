package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Version information variables - set by main.go
var (
	version   = "dev"
	gitCommit = "none"
	buildTime = "unknown"
	buildBy   = "unknown"
)

// SetVersionInfo sets the version information from main.go
func SetVersionInfo(v, commit, buildTimeParam, buildByParam string) {
	version = v
	gitCommit = commit
	buildTime = buildTimeParam
	buildBy = buildByParam
}

// GetVersionInfo returns the current version information
func GetVersionInfo() (string, string, string, string) {
	return version, gitCommit, buildTime, buildBy
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: "A CLI tool for translating the text of .txt, .docx and .pdf documents.\n\n" +
		"Version Information:\n" +
		"- Version\n" +
		"- Git Commit\n" +
		"- Build Time\n" +
		"- Built By\n" +
		"- Go Version\n" +
		"- OS/Architecture",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showVersionInfo(cmd.OutOrStdout())
	},
}

// showVersionInfo displays comprehensive version information
func showVersionInfo(w io.Writer) {
	fmt.Fprintf(w, "📄 Doc Translate\n")
	fmt.Fprintf(w, "================\n\n")

	fmt.Fprintf(w, "🔖 Version Information:\n")
	fmt.Fprintf(w, "  Version:     %s\n", version)
	fmt.Fprintf(w, "  Git Commit:  %s\n", gitCommit)
	fmt.Fprintf(w, "  Build Time:  %s\n", buildTime)
	fmt.Fprintf(w, "  Built By:    %s\n", buildBy)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "⚙️ Runtime Information:\n")
	fmt.Fprintf(w, "  Go Version:  %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  Compiler:    %s\n", runtime.Compiler)
	fmt.Fprintf(w, "\n")

	if isReleaseBuild(version) {
		fmt.Fprintf(w, "🚀 Release Information:\n")
		fmt.Fprintf(w, "  This is a release build\n")
		fmt.Fprintf(w, "  Release notes: https://github.com/nodewee/doc-translate/releases/tag/%s\n", version)
	} else {
		fmt.Fprintf(w, "🔧 Development Information:\n")
		fmt.Fprintf(w, "  This is a development build\n")
		fmt.Fprintf(w, "  Not for production use\n")
	}
}

func isReleaseBuild(v string) bool {
	return v != "dev" && !strings.Contains(v, "dev") && !strings.Contains(v, "+")
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
