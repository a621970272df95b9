package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/driveindex/internal/auth"
	"github.com/dbsmedya/driveindex/internal/drive"
	"github.com/dbsmedya/driveindex/internal/logger"
	"github.com/dbsmedya/driveindex/internal/report"
	"github.com/dbsmedya/driveindex/internal/resolver"
)

var (
	scanFolder         string
	scanOutput         string
	scanNoLinks        bool
	scanNonInteractive bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan Google Drive for image files and write the path report",
	Long: `Scan authenticates against Google Drive, lists every non-trashed
image file (whole account or a single folder), resolves folder paths,
and writes the text report plus a JSON mirror of the raw listing.

Values not supplied via flags are prompted for on stdin; pass
--non-interactive to use configuration defaults instead.

Example:
  driveindex scan --config driveindex.yaml --folder 1aBcD... --output photos.txt`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFolder, "folder", "f", "",
		"Folder ID to scan (default: entire Drive)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "",
		"Output filename for the text report")
	scanCmd.Flags().BoolVar(&scanNoLinks, "no-links", false,
		"Omit file IDs and links from the text report")
	scanCmd.Flags().BoolVar(&scanNonInteractive, "non-interactive", false,
		"Never prompt; use flags and configuration values only")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	// Load configuration (optional at the default path)
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.PageSize)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Folder scope: flag wins, then config, then prompt
	folderID := cfg.Scan.FolderID
	if cmd.Flags().Changed("folder") {
		folderID = scanFolder
	} else if folderID == "" && !scanNonInteractive {
		folderID = promptString(in, out,
			"Enter folder ID (press Enter for entire Drive): ", "")
	}

	// Authenticate
	log.Infow("Authenticating with Google Drive",
		"credentials", cfg.Auth.CredentialsFile,
		"token", cfg.Auth.TokenFile,
	)
	authenticator := auth.New(auth.Options{
		CredentialsFile: cfg.Auth.CredentialsFile,
		TokenFile:       cfg.Auth.TokenFile,
		AuthInput:       cmd.InOrStdin(),
		AuthOutput:      out,
	}, log)

	httpClient, err := authenticator.Client(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	client, err := drive.NewClient(ctx, httpClient)
	if err != nil {
		return fmt.Errorf("failed to create drive client: %w", err)
	}

	// List image files
	log.Infow("Searching for image files", "folder", folderID)
	lister := drive.NewLister(client, cfg.ExtensionSet(), cfg.Scan.PageSize, log)
	images, stats, err := lister.ListImages(ctx, folderID)
	if err != nil {
		return fmt.Errorf("listing failed: %w", err)
	}

	if len(images) == 0 {
		cmd.Println("No image files found.")
		return nil
	}
	cmd.Printf("Found %d image files.\n", len(images))

	// Output name and link inclusion: flag wins, then prompt, then config
	outputFile := cfg.Output.File
	if cmd.Flags().Changed("output") {
		outputFile = scanOutput
	} else if !scanNonInteractive {
		outputFile = promptString(in, out,
			fmt.Sprintf("Output filename (default: %s): ", cfg.Output.File), cfg.Output.File)
	}

	includeLinks := cfg.Output.IncludeLinks
	if cmd.Flags().Changed("no-links") {
		includeLinks = !scanNoLinks
	} else if !scanNonInteractive {
		includeLinks = promptYesNo(in, out,
			"Include download links? (y/n, default: y): ")
	}

	// Resolve paths and write the report
	res := resolver.New(client, log)
	writer := report.NewWriter(res, includeLinks, log)

	if err := writer.WriteText(ctx, outputFile, images); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	cmd.Printf("Image paths saved to %s\n", outputFile)

	if cfg.Output.WriteJSON {
		jsonFile := report.JSONPath(outputFile)
		if err := report.WriteJSON(jsonFile, images); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
		cmd.Printf("Also saved JSON data to %s\n", jsonFile)
	}

	// Display results
	cmd.Println()
	cmd.Println(color.Green.Render("=== Scan Complete ==="))
	cmd.Printf("Images found: %d\n", stats.ImagesFound)
	cmd.Printf("Files examined: %d\n", stats.FilesSeen)
	cmd.Printf("Pages fetched: %d\n", stats.PagesFetched)
	cmd.Printf("Folders resolved: %d\n", res.CacheSize())
	cmd.Printf("Duration: %s\n", stats.Duration)
	cmd.Println()
	report.RenderSummary(out, report.Summarize(images))

	for _, fp := range res.CachedPaths() {
		log.Debugw("Resolved folder", "id", fp.ID, "path", fp.Path)
	}

	return nil
}

// promptString reads one line, returning def on blank or EOF.
func promptString(in *bufio.Reader, out io.Writer, label, def string) string {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return def
	}
	if line == "" {
		return def
	}
	return line
}

// promptYesNo reads a y/n answer. Anything other than "n" means yes,
// matching the report's include-links default.
func promptYesNo(in *bufio.Reader, out io.Writer, label string) bool {
	answer := promptString(in, out, label, "y")
	return strings.ToLower(answer) != "n"
}
