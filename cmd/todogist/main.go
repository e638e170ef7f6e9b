package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"todogist/internal/auth"
	"todogist/internal/config"
	"todogist/internal/domain"
	"todogist/internal/gist"
	"todogist/internal/pipeline"
	"todogist/internal/render"
	"todogist/internal/todoist"
)

var (
	// CLI flags
	projectFlag   int64
	gistFlag      string
	openFlag      bool
	debugFlag     bool
	widthFlag     int
	ancestorFlags []int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todogist",
		Short: "Export a task project to a GitHub gist",
		Long: `todogist pulls a project from the task service's sync API, normalizes its
items into a done/pending board, and publishes the result as markdown to a
GitHub gist.

Authentication:
  TODOIST_TOKEN   sync API token (integration settings)
  GITHUB_TOKEN    token with gist scope, or run 'gh auth login'

Defaults for --project and --gist can be set via TODOGIST_PROJECT_ID and
TODOGIST_GIST_ID.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Int64Var(&projectFlag, "project", 0, "Project id to export. Overrides TODOGIST_PROJECT_ID.")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging.")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the project and update the gist",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&gistFlag, "gist", "", "Target gist id. Overrides TODOGIST_GIST_ID.")
	exportCmd.Flags().BoolVar(&openFlag, "open", false, "Open the updated gist in the browser.")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Fetch the project and print the board to stdout",
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&widthFlag, "width", 80, "Preview width in columns.")

	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Aggregate archived items across the project, its sections, and given ancestors",
		RunE:  runArchive,
	}
	archiveCmd.Flags().Int64SliceVar(&ancestorFlags, "ancestor", nil, "Ancestor item id to include (repeatable).")
	archiveCmd.Flags().IntVar(&widthFlag, "width", 80, "Output width in columns.")

	rootCmd.AddCommand(exportCmd, previewCmd, archiveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger honoring --debug.
func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if debugFlag {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// setup loads configuration and builds the authenticated sync API client.
func setup() (*config.Config, *todoist.Client, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	token, err := auth.TodoistToken()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := newLogger()
	client := todoist.New(token, logger,
		todoist.WithBaseURL(cfg.APIBaseURL),
		todoist.WithRateLimit(cfg.RateLimit, cfg.RateBurst))
	return cfg, client, logger, nil
}

// resolveProject picks the project id from the flag or configuration.
func resolveProject(cfg *config.Config) (int64, error) {
	if projectFlag != 0 {
		return projectFlag, nil
	}
	if cfg.ProjectID != 0 {
		return cfg.ProjectID, nil
	}
	return 0, fmt.Errorf("no project selected: pass --project or set TODOGIST_PROJECT_ID")
}

// fetchProject pulls one project's data and builds its section map.
func fetchProject(cmd *cobra.Command, client *todoist.Client, projectID int64) (todoist.ProjectData, domain.SectionMap, error) {
	data, err := client.ProjectData(cmd.Context(), projectID)
	if err != nil {
		return todoist.ProjectData{}, nil, err
	}
	return data, pipeline.BuildSectionMap(data.Sections, projectID), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, client, logger, err := setup()
	if err != nil {
		return err
	}

	projectID, err := resolveProject(cfg)
	if err != nil {
		return err
	}

	gistID := gistFlag
	if gistID == "" {
		gistID = cfg.GistID
	}
	if gistID == "" {
		return fmt.Errorf("no target gist: pass --gist or set TODOGIST_GIST_ID")
	}

	data, sections, err := fetchProject(cmd, client, projectID)
	if err != nil {
		return err
	}

	res, categoryIDs := pipeline.MapProject(data, sections)
	logger.Debug("project filtered",
		"pending", len(res.Items.Pending),
		"done", len(res.Items.Done),
		"categories", len(categoryIDs))

	ghToken, err := auth.GitHubToken()
	if err != nil {
		return err
	}

	url, err := gist.New(ghToken, logger).Publish(cmd.Context(), gistID, cfg.GistFilename, render.Markdown(res))
	if err != nil {
		return err
	}
	logger.Info("gist updated", "url", url)

	if openFlag {
		if err := browser.OpenURL(url); err != nil {
			logger.Warn("could not open browser", "err", err)
		}
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, client, logger, err := setup()
	if err != nil {
		return err
	}

	projectID, err := resolveProject(cfg)
	if err != nil {
		return err
	}

	data, sections, err := fetchProject(cmd, client, projectID)
	if err != nil {
		return err
	}

	res, categoryIDs := pipeline.MapProject(data, sections)
	logger.Debug("project filtered",
		"pending", len(res.Items.Pending),
		"done", len(res.Items.Done),
		"categories", len(categoryIDs))

	fmt.Print(render.Board(res, widthFlag))
	return nil
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, client, logger, err := setup()
	if err != nil {
		return err
	}

	projectID, err := resolveProject(cfg)
	if err != nil {
		return err
	}

	data, sections, err := fetchProject(cmd, client, projectID)
	if err != nil {
		return err
	}

	tasks, err := pipeline.AggregateArchive(cmd.Context(), client, projectID, sections, ancestorFlags)
	if err != nil {
		return err
	}
	logger.Debug("archive aggregated", "tasks", len(tasks), "sections", len(sections)-1, "ancestors", len(ancestorFlags))

	res := domain.ProjectResult{Name: data.Project.Name + " (archive)"}
	for _, t := range tasks {
		if t.Checked {
			res.Items.Done = append(res.Items.Done, t)
		} else {
			res.Items.Pending = append(res.Items.Pending, t)
		}
	}
	fmt.Print(render.Board(res, widthFlag))
	return nil
}
