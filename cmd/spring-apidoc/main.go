package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"spring-apidoc/internal/analyzer"
	"spring-apidoc/internal/config"
	"spring-apidoc/internal/exporter"
	"spring-apidoc/internal/exporter/openapi"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
	"spring-apidoc/internal/session"
	"spring-apidoc/internal/ui"
	"spring-apidoc/internal/upload"
)

const (
	appName    = "spring-apidoc"
	appVersion = "1.0.0"
	appDesc    = "Generates OpenAPI3/Swagger2 documents from Spring MVC controllers"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	outputDir   string
	formats     string
	searchText  string
	selectRefs  string
	doUpload    bool
	gotoRef     string
	configure   bool
	pause       bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "json,html", "Comma-separated output formats (json,yaml,html,excel,word)")
	flag.StringVar(&searchText, "search", "", "Only keep endpoints whose path, method, description or folder contains this text")
	flag.StringVar(&selectRefs, "select", "", "Comma-separated endpoint ids or \"METHOD /path\" references to keep")
	flag.BoolVar(&doUpload, "upload", false, "Upload the selected (or all listed) endpoints to Apifox")
	flag.StringVar(&gotoRef, "goto", "", "Print file:line:column of an endpoint id or \"METHOD /path\" and exit")
	flag.BoolVar(&configure, "configure", false, "Prompt for Apifox credentials and save them")
	flag.BoolVar(&pause, "pause", false, "Wait for Enter before exiting")
}

func main() {
	// Keep the console open on panic when -pause is set
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		if pause {
			waitForEnter()
		}
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	if gotoRef == "" {
		printBanner()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ Failed to create output directory: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "spring_apidoc.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if verbose {
		cfg.Print()
	}

	fsys := afero.NewOsFs()
	if configure {
		if err := runConfigure(fsys, cfg, os.Stdin); err != nil {
			logger.Error("Configuration failed: %v", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runPipeline(ctx, fsys, cfg); err != nil {
		var uploadErr *upload.Error
		switch {
		case errors.As(err, &uploadErr):
			logger.Error("%v", uploadErr)
		case errors.Is(err, config.ErrConfigMissing), errors.Is(err, config.ErrConfigInvalid):
			logger.Error("%v", err)
			logger.Error("Run with -configure to set the Apifox API key and project id.")
		default:
			logger.Error("Run failed: %v", err)
		}
		return 1
	}
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runPipeline(ctx context.Context, fsys afero.Fs, cfg *config.Config) error {
	phases := ui.GeneratePhases
	if doUpload {
		phases = ui.UploadPhases
	}
	pipeline := ui.NewPipeline(phases)
	if gotoRef != "" {
		pipeline.Disable()
	}

	// --- Phase 1: Scanning ---
	logger.Debug("Phase 1: Scanning %s", cfg.Project.RootDir)
	scanBar := pipeline.NextPhase(1)
	controllers, err := analyzer.ListControllerFiles(fsys, cfg)
	if err != nil {
		return err
	}
	scanBar.Increment()
	logger.Debug("Found %d controller file(s)", len(controllers))

	// --- Phase 2: Building ---
	buildBar := pipeline.NextPhase(len(controllers))
	builder := analyzer.NewBuilder(fsys, cfg).WithProgress(buildBar)
	refresher := session.NewRefresher(builder.Build)
	snap, err := refresher.Refresh(ctx)
	if err != nil {
		return err
	}

	state := session.NewState(snap)

	if gotoRef != "" {
		ep, err := state.Resolve(gotoRef)
		if err != nil {
			return fmt.Errorf("%q: %w", gotoRef, err)
		}
		fmt.Printf("%s:%d:%d\n", ep.Location.File, ep.Location.Line+1, ep.Location.Column+1)
		return nil
	}

	state.Search(searchText)
	if err := applySelection(state, selectRefs); err != nil {
		return err
	}
	if searchText != "" || selectRefs != "" {
		printTree(os.Stdout, state)
	}

	endpoints := state.Filtered()
	if len(state.Selected()) > 0 {
		endpoints = state.Selected()
	}
	report := model.NewReport(cfg.Document.Title, cfg.Document.Description, cfg.Document.Version,
		cfg.Document.Schema, endpoints, snap.Failed)

	// --- Phase 3: Generating ---
	exporters := exporter.GetExporters(strings.Split(formats, ","))
	if len(exporters) == 0 {
		return fmt.Errorf("no supported output format in %q", formats)
	}
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(report, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	if len(exportErrors) > 0 {
		pipeline.Finish()
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	// --- Phase 4: Uploading ---
	if doUpload {
		pipeline.NextPhase(1)
		if err := runUpload(ctx, fsys, cfg, report); err != nil {
			pipeline.Finish()
			return err
		}
	}
	pipeline.Finish()

	if n := logger.ParseErrorCount(); n > 0 {
		logger.Warn("%d file(s) could not be parsed, see %s", n, logger.GetLogFilePath())
	}
	logger.Info("✅ %d endpoint(s) documented. Check [%s] directory.", len(endpoints), cfg.Output.Dir)
	return nil
}

// applySelection toggles each comma-separated reference on
func applySelection(state *session.State, refs string) error {
	for _, ref := range strings.Split(refs, ",") {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		ep, err := state.Resolve(ref)
		if err != nil {
			return fmt.Errorf("select %q: %w", ref, err)
		}
		if state.IsSelected(ep.ID) {
			continue
		}
		if _, err := state.ToggleSelect(ep.ID); err != nil {
			return err
		}
	}
	return nil
}

func printTree(w io.Writer, state *session.State) {
	for _, folder := range state.Folders() {
		fmt.Fprintf(w, "📁 %s (%d)\n", folder.Name, folder.Count)
		for _, ep := range folder.Endpoints {
			mark := "○"
			if state.IsSelected(ep.ID) {
				mark = "✔"
			}
			fmt.Fprintf(w, "   %s %-7s %s  %s  [%s]\n", mark, ep.Method, ep.Path, ep.Description, ep.ID)
		}
	}
}

func runUpload(ctx context.Context, fsys afero.Fs, cfg *config.Config, report *model.Report) error {
	creds, err := config.LoadApifox(fsys, cfg.ApifoxConfigPath(), cfg.ApifoxEnvPath())
	if err != nil {
		return err
	}
	if len(report.Endpoints) == 0 {
		return errors.New("nothing to upload: no endpoints selected")
	}

	info := openapi.Info{Title: creds.ProjectName, Description: report.Description, Version: report.Version}
	doc, err := openapi.EmitWithInfo(report.Endpoints, info, openapi.Mode(report.Schema))
	if err != nil {
		return err
	}
	payload, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	spinner := ui.NewSpinner(fmt.Sprintf("Uploading %d endpoint(s) to Apifox...", len(report.Endpoints)))
	spinner.Start(100 * time.Millisecond)
	client := upload.NewClient(cfg.Apifox.BaseURL, creds.APIKey, creds.ProjectID)
	_, err = client.Import(ctx, payload)
	spinner.Stop()
	if err != nil {
		return err
	}

	logger.Info("Synced %d endpoint(s) to Apifox project %s", len(report.Endpoints), creds.ProjectID)
	return nil
}

// runConfigure asks for the Apifox credentials on in and saves them
func runConfigure(fsys afero.Fs, cfg *config.Config, in io.Reader) error {
	reader := bufio.NewReader(in)
	prompt := func(label, def string) (string, error) {
		if def != "" {
			fmt.Printf("%s [%s]: ", label, def)
		} else {
			fmt.Printf("%s: ", label)
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}
		return line, nil
	}

	var existing config.ApifoxConfig
	if prev, err := config.LoadApifox(fsys, cfg.ApifoxConfigPath(), ""); err == nil {
		existing = *prev
	}

	apiKey, err := prompt("Apifox API key", existing.APIKey)
	if err != nil {
		return err
	}
	projectID, err := prompt("Apifox project id", existing.ProjectID)
	if err != nil {
		return err
	}
	projectName := existing.ProjectName
	if projectName == "" {
		projectName = config.DefaultProjectName
	}
	projectName, err = prompt("Project name", projectName)
	if err != nil {
		return err
	}

	creds := &config.ApifoxConfig{APIKey: apiKey, ProjectID: projectID, ProjectName: projectName}
	if err := config.SaveApifox(fsys, cfg.ApifoxConfigPath(), creds); err != nil {
		return err
	}
	logger.Info("Apifox configuration saved to %s", cfg.ApifoxConfigPath())
	return nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                    SPRING-APIDOC v1.0.0                   ║
║      OpenAPI / Swagger documents from Spring MVC code     ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
