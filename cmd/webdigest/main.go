package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webdigest"
	"github.com/fwojciec/webdigest/deepseek"
	"github.com/fwojciec/webdigest/digest"
	"github.com/fwojciec/webdigest/gemini"
	"github.com/fwojciec/webdigest/goquery"
	wdhttp "github.com/fwojciec/webdigest/http"
	"github.com/fwojciec/webdigest/ollama"
	"github.com/fwojciec/webdigest/readability"
	"github.com/fwojciec/webdigest/rod"
	wdslog "github.com/fwojciec/webdigest/slog"
	"github.com/fwojciec/webdigest/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Missing .env is fine; configuration falls back to process env.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Logger for the fetcher and backend decorators.
	Logger *slog.Logger

	// SQLite database used by the record service.
	DB *sqlite.DB

	// Record service for end-to-end testing.
	Records webdigest.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.Logger == nil {
		m.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webdigest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webdigest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBDIGEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Records = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Records = m.Records

	// Commands that summarize need the backend chain; commands that also
	// fetch pages need the acquisition backends on top.
	if cmd == "add" || cmd == "manual" || cmd == "batch" {
		summarizer, err := m.newGenerator(ctx)
		if err != nil {
			return err
		}

		deps.Pipeline = &digest.Pipeline{
			Summarizer: summarizer,
			Records:    m.Records,
		}

		if cmd != "manual" {
			useReadability := cli.Add.Readability || cli.Batch.Readability
			acquirer, cleanup := m.newAcquirer(stderr, useReadability)
			defer cleanup()
			deps.Pipeline.Acquirer = acquirer
		}
	}

	if cmd == "batch" {
		deps.Batch = &digest.BatchRunner{
			Pipeline:    deps.Pipeline,
			Limiter:     digest.NewDomainLimiter(cli.Batch.Rate),
			Concurrency: cli.Batch.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newAcquirer wires the rendered and static acquisition backends. A browser
// that fails to start only disables the rendered backend; acquisition then
// runs on raw HTTP alone.
func (m *Main) newAcquirer(stderr io.Writer, useReadability bool) (*digest.Acquirer, func()) {
	acquirer := &digest.Acquirer{
		Static:          wdslog.NewLoggingFetcher(wdhttp.NewFetcher(), "static", m.Logger),
		StaticExtractor: goquery.NewExtractor(goquery.WithBoilerplateRemoval()),
	}
	if useReadability {
		acquirer.StaticExtractor = readability.NewExtractor()
	}

	cleanup := func() {}
	if browser, err := rod.NewFetcher(); err != nil {
		fmt.Fprintln(stderr, "Hint: Install Chrome or Chromium to enable rendered-page fetching")
		m.Logger.Warn("browser unavailable, using raw HTTP only", "err", err)
	} else {
		acquirer.Rendered = wdslog.NewLoggingFetcher(browser, "rendered", m.Logger)
		acquirer.RenderedExtractor = goquery.NewExtractor()
		cleanup = func() { _ = browser.Close() }
	}
	return acquirer, cleanup
}

// newGenerator builds the summarization chain from the configured providers,
// in priority order. With no provider configured, the chain is just the
// extractive fallback and everything still works offline.
func (m *Main) newGenerator(ctx context.Context) (*digest.Generator, error) {
	var backends []webdigest.Backend

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		backends = append(backends, gemini.NewBackend(client))
	}

	if apiKey := os.Getenv("DEEPSEEK_API_KEY"); apiKey != "" {
		var opts []deepseek.Option
		if baseURL := os.Getenv("DEEPSEEK_BASE_URL"); baseURL != "" {
			opts = append(opts, deepseek.WithBaseURL(baseURL))
		}
		if model := os.Getenv("DEEPSEEK_MODEL"); model != "" {
			opts = append(opts, deepseek.WithModel(model))
		}
		backends = append(backends, deepseek.NewBackend(apiKey, opts...))
	}

	if baseURL := os.Getenv("OLLAMA_URL"); baseURL != "" {
		var opts []ollama.Option
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			opts = append(opts, ollama.WithModel(model))
		}
		backends = append(backends, ollama.NewBackend(baseURL, opts...))
	}

	for i, b := range backends {
		backends[i] = wdslog.NewLoggingBackend(b, m.Logger)
	}

	return digest.NewGenerator(m.Logger, backends...), nil
}

func logLevel() slog.Level {
	if os.Getenv("WEBDIGEST_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func defaultDBPath() string {
	if path := os.Getenv("WEBDIGEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webdigest.db"
	}
	dir := filepath.Join(home, ".webdigest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webdigest.db")
}
