package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nodewee/doc-translate/pkg/config"
	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/core"
	"github.com/nodewee/doc-translate/pkg/interfaces"
	"github.com/nodewee/doc-translate/pkg/logger"
	"github.com/nodewee/doc-translate/pkg/translator"
	"github.com/nodewee/doc-translate/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	outputPath     string
	sourceLanguage string
	targetLanguage string
	textFormat     string
	endpoint       string
	apiKey         string
	proxyURL       string
	timeoutSeconds int
	showSource     bool
	verbose        bool
	showVersion    bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config    *config.Config
	logger    *logger.Logger
	processor interfaces.TranslationProcessor
	stdout    io.Writer
	stderr    io.Writer

	// timeoutSet is true when --timeout was given, including --timeout 0
	timeoutSet bool
}

// NewAppHandler creates an application handler writing to the given streams
func NewAppHandler(stdout, stderr io.Writer) *AppHandler {
	return &AppHandler{stdout: stdout, stderr: stderr}
}

// TranslateFile is the main entry point: load, extract, translate, write
func (h *AppHandler) TranslateFile(ctx context.Context, inputFile string) error {
	file, err := utils.LoadUploadedFile(inputFile)
	if err != nil {
		return err
	}
	if file == nil {
		fmt.Fprintf(h.stderr, "⚠️  %s\n", constants.MsgNoFile)
		return core.ErrNoFile
	}

	if err := h.initialize(); err != nil {
		return err
	}
	defer h.logger.Sync()

	result, err := h.processor.Process(ctx, file)
	if err != nil {
		return err
	}

	if err := h.writeOutput(result.TranslatedText); err != nil {
		return err
	}

	h.displayResults(result)
	return nil
}

// initialize builds configuration, logger and processor
func (h *AppHandler) initialize() error {
	// Load configuration: defaults < file < env < flags
	h.config = config.LoadConfigWithEnvOverrides()
	h.applyCommandLineOverrides()

	if err := config.NewConfigValidator().ValidateForTranslation(h.config); err != nil {
		return err
	}

	h.logger = logger.NewLoggerWithWriter(h.config.LogLevel, h.config.EnableVerbose, h.stderr)
	h.logger.Debug("Configuration: %s", h.config)

	tr, err := translator.NewGoogleTranslator(h.config, h.logger)
	if err != nil {
		return err
	}
	h.processor = core.NewTranslationProcessor(tr, h.logger)

	return nil
}

// applyCommandLineOverrides applies command line parameter overrides
func (h *AppHandler) applyCommandLineOverrides() {
	if sourceLanguage != "" {
		h.config.SourceLanguage = sourceLanguage
	}
	if targetLanguage != "" {
		h.config.TargetLanguage = targetLanguage
	}
	if textFormat != "" {
		h.config.Format = textFormat
	}
	if endpoint != "" {
		h.config.Endpoint = endpoint
	}
	if apiKey != "" {
		h.config.APIKey = apiKey
	}
	if proxyURL != "" {
		h.config.ProxyURL = proxyURL
	}
	if h.timeoutSet {
		h.config.TimeoutSeconds = timeoutSeconds
	}
	if verbose {
		h.config.EnableVerbose = true
	}
}

// writeOutput writes the translation to the output file or stdout
func (h *AppHandler) writeOutput(translated string) error {
	if outputPath != "" {
		if err := utils.WriteTextFile(outputPath, translated); err != nil {
			return err
		}
		h.logger.ProgressAlways("💾", "Translation saved to: %s", outputPath)
		return nil
	}

	_, err := fmt.Fprintln(h.stdout, translated)
	return err
}

// displayResults shows processing details on stderr
func (h *AppHandler) displayResults(result *interfaces.TranslationResult) {
	extractor := result.ExtractorUsed
	if extractor == "" {
		extractor = "(none)"
	}
	h.logger.Progress("📊", "Extractor used: %s", extractor)
	h.logger.Progress("⏱️ ", "Processing time: %dms", result.ProcessTime)
	h.logger.Progress("📝", "Extracted text length: %d characters", len(result.ExtractedText))

	if showSource {
		h.showTextPreview(result.ExtractedText)
	}
}

// showTextPreview displays a preview of the extracted source text
func (h *AppHandler) showTextPreview(text string) {
	preview := text
	if len(preview) > constants.PreviewLength {
		preview = preview[:constants.PreviewLength]
		if lastNewline := strings.LastIndex(preview, "\n"); lastNewline > 0 {
			preview = preview[:lastNewline]
		}
		preview = strings.ToValidUTF8(preview, "") + "..."
	}
	fmt.Fprintf(h.stderr, "📄 Source:---\n%s\n---\n", preview)
}

// reportError prints err as "Error (type): message"
func reportError(w io.Writer, err error) {
	if err == core.ErrNoFile {
		return // notice already shown
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			fmt.Fprintf(w, "Error (%s): %s: %v\n", appErr.Type, appErr.Message, appErr.Cause)
		} else {
			fmt.Fprintf(w, "Error (%s): %s\n", appErr.Type, appErr.Message)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// reported prints a non-nil err to the command's stderr and returns it
func reported(cmd *cobra.Command, err error) error {
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "doc-translate [input_file]",
	Short: "Extract text from a document and translate it",
	Long: `Extract the text of a plain text, Word (.docx) or PDF document and translate it
with the Google Cloud Translation API (v2).

The file type is chosen by the exact, case-sensitive file name suffix:
  .txt   read as UTF-8 text
  .docx  raw text of the Word document
  .pdf   text of every page, in page order
Files with any other suffix are translated as empty text.

The API key is read from the config file (~/.doc-translate/config.yaml),
DOC_TRANSLATE_API_KEY / GOOGLE_TRANSLATE_API_KEY, or --api-key.

Examples:
  doc-translate letter.docx                       # Amharic -> English to stdout
  doc-translate report.pdf -o report.en.txt       # Write translation to a file
  doc-translate notes.txt --source am --target fr # Override the language pair
  doc-translate notes.txt --proxy socks5://127.0.0.1:1080
  doc-translate config set api_key <KEY>          # Store the API key`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handle version flag
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.AppName, version)
			return nil
		}

		inputFile := ""
		if len(args) > 0 {
			inputFile = args[0]
		}

		handler := NewAppHandler(cmd.OutOrStdout(), cmd.ErrOrStderr())
		handler.timeoutSet = cmd.Flags().Changed("timeout")
		return reported(cmd, handler.TranslateFile(cmd.Context(), inputFile))
	},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the translation to this file instead of stdout")
	rootCmd.Flags().StringVar(&sourceLanguage, "source", "",
		"Source language code (default from config: am)")
	rootCmd.Flags().StringVar(&targetLanguage, "target", "",
		"Target language code (default from config: en)")
	rootCmd.Flags().StringVar(&textFormat, "format", "",
		"Format of the source text sent to the API (text, html)")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "",
		"Translation endpoint URL")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "",
		"Translation API key")
	rootCmd.Flags().StringVar(&proxyURL, "proxy", "",
		"Proxy for the translation request (http://, https://, socks5://)")
	rootCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0,
		"Request timeout in seconds (default: none)")
	rootCmd.Flags().BoolVar(&showSource, "show-source", false,
		"Print a preview of the extracted source text to stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"Show version information")
}
