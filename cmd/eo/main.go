// eo pipes command output through a local Ollama model and renders the
// reply for a terminal.
//
// Usage:
//
//	df -h | eo
//	cat payload.json | eo
//	kubectl get pods | eo --no-ai
//	eo models
//
// Input is classified as JSON, table, or plain text. JSON and tables
// are pretty-printed as a preview above the model's analysis; plain
// text is replaced by the enhanced rendering alone.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/Locotir/EnhanceOutput/internal/config"
	"github.com/Locotir/EnhanceOutput/internal/detect"
	"github.com/Locotir/EnhanceOutput/internal/logging"
	"github.com/Locotir/EnhanceOutput/internal/ollama"
	"github.com/Locotir/EnhanceOutput/internal/picker"
	"github.com/Locotir/EnhanceOutput/internal/prompt"
	"github.com/Locotir/EnhanceOutput/internal/spinner"
	"github.com/Locotir/EnhanceOutput/internal/version"
	"github.com/Locotir/EnhanceOutput/pkg/render"
	"github.com/Locotir/EnhanceOutput/pkg/sanitize"
)

const serviceCheckTimeout = 5 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 && args[0] == "models" {
		return runModels(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("eo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	urlFlag := fs.String("url", "", "Ollama base URL (persisted for later runs)")
	modelFlag := fs.String("model", "", "Model name (persisted for later runs)")
	widthFlag := fs.Int("width", 0, "Output width (default: terminal width)")
	formatFlag := fs.String("format", "auto", "Force input format: auto, json, table, text")
	noAI := fs.Bool("no-ai", false, "Print the formatted preview without querying the model")
	noColor := fs.Bool("no-color", false, "Disable ANSI colors")
	timeoutFlag := fs.Duration("timeout", 2*time.Minute, "Model reply timeout")
	debugFlag := fs.Bool("debug", false, "Verbose logging on stderr")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	logging.Setup(stderr, *debugFlag || config.EnvBool(os.Getenv, "EO_DEBUG"))
	log := logging.Get("cli")

	colors := colorsEnabled(*noColor, os.Getenv, stdout)
	applyColorProfile(colors)
	theme := render.ThemeFor(colors)
	log.Debug().Bool("colors", colors).Str("theme", theme.Name).Msg("color mode resolved")

	kind, auto, ok := parseFormatFlag(*formatFlag)
	if !ok {
		fmt.Fprintf(stderr, "eo: unknown format %q (expected auto, json, table, text)\n", *formatFlag)
		return 2
	}

	cfgPath := config.Path()
	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("config unreadable, using defaults")
	}
	cfg := config.Resolve(*urlFlag, *modelFlag, os.Getenv, fileCfg)
	log.Debug().Str("url", cfg.URL).Str("model", cfg.Model).Msg("configuration resolved")

	if *urlFlag != "" || *modelFlag != "" {
		if err := config.Save(cfgPath, cfg); err != nil {
			log.Warn().Err(err).Str("path", cfgPath).Msg("persisting config failed")
		}
	}

	client := ollama.New(cfg.URL, *timeoutFlag)

	// The service check runs before stdin is consumed so a dead service
	// fails fast even on a long pipe.
	var models []ollama.Model
	if !*noAI {
		ctx, cancel := context.WithTimeout(context.Background(), serviceCheckTimeout)
		models, err = client.Tags(ctx)
		cancel()
		if err != nil {
			log.Debug().Err(err).Msg("service check failed")
			fmt.Fprintln(stderr, theme.Error.Render("Ollama service not started or invalid url"))
			return 1
		}
	}

	raw, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "eo: reading stdin: %v\n", err)
		return 2
	}
	input := string(raw)
	if input == "" {
		fmt.Fprintln(stdout, "No input provided.")
		return 0
	}

	if auto {
		kind = detect.Detect(input)
	}
	width := outputWidth(*widthFlag, stdout)
	log.Debug().Stringer("kind", kind).Int("width", width).Msg("input classified")

	preview := buildPreview(kind, input, width, colors)

	if *noAI {
		out := preview
		if kind == detect.PlainText {
			out = input
		}
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		fmt.Fprint(stdout, out)
		return 0
	}

	model := ollama.PickModel(models, cfg.Model, config.DefaultModel)
	log.Debug().Str("model", model).Msg("model selected")

	reply := generate(client, model, prompt.Build(kind, input), *timeoutFlag, width, colors, stderr, log)

	if kind == detect.JSON || kind == detect.Table {
		fmt.Fprintf(stdout, "%s\n\n%s\n", preview, reply)
	} else {
		fmt.Fprintf(stdout, "%s\n", reply)
	}
	return 0
}

// generate queries the model with a spinner on stderr and maps each
// failure class to the reply text printed in its place.
func generate(client *ollama.Client, model, question string, timeout time.Duration, width int, colors bool, stderr io.Writer, log zerolog.Logger) string {
	spin := newSpinner(stderr, model, width, colors)
	if spin != nil {
		spin.Start()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	start := time.Now()
	reply, err := client.Generate(ctx, model, question)
	if spin != nil {
		spin.Stop()
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("generate finished")

	if err != nil {
		fmt.Fprintf(stderr, "eo: %v\n", err)
		switch {
		case errors.Is(err, ollama.ErrMissingResponse):
			return "Error: No 'response' in AI output"
		case errors.Is(err, ollama.ErrInvalidResponse):
			return "Error: Invalid AI response"
		default:
			return "Error: AI server issue"
		}
	}
	return sanitize.New(colors).Run(reply)
}

func newSpinner(stderr io.Writer, model string, width int, colors bool) *spinner.Spinner {
	if !isTTYWriter(stderr) {
		return nil
	}
	color := ""
	if colors {
		color = "\033[33m"
	}
	return spinner.New(stderr, "Waiting for "+model, width, color)
}

// buildPreview renders the pretty-printed form shown above the reply.
// Plain text has no preview.
func buildPreview(kind detect.Kind, input string, width int, colors bool) string {
	switch kind {
	case detect.JSON:
		pretty := render.JSON(input, width)
		if colors {
			return render.HighlightJSON(pretty)
		}
		return pretty
	case detect.Table:
		return render.Table(input, width)
	default:
		return ""
	}
}

// parseFormatFlag maps the --format value to a kind. The second result
// reports whether classification should run instead.
func parseFormatFlag(format string) (kind detect.Kind, auto, ok bool) {
	switch format {
	case "auto":
		return detect.PlainText, true, true
	case "json":
		return detect.JSON, false, true
	case "table":
		return detect.Table, false, true
	case "text":
		return detect.PlainText, false, true
	default:
		return detect.PlainText, false, false
	}
}

func colorsEnabled(noColorFlag bool, env func(string) string, stdout io.Writer) bool {
	if noColorFlag || env("NO_COLOR") != "" {
		return false
	}
	if env("FORCE_COLOR") != "" {
		return true
	}
	return isTTYWriter(stdout)
}

// applyColorProfile pins the lipgloss renderer so styled output does
// not depend on its own TTY detection.
func applyColorProfile(colors bool) {
	if colors {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outputWidth returns the width flag when set, otherwise the terminal
// width for w, defaulting to render.DefaultWidth.
func outputWidth(flagWidth int, w io.Writer) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return render.DefaultWidth
}

// --- eo models subcommand ---

func runModels(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("eo models", flag.ContinueOnError)
	fs.SetOutput(stderr)
	urlFlag := fs.String("url", "", "Ollama base URL")
	debugFlag := fs.Bool("debug", false, "Verbose logging on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logging.Setup(stderr, *debugFlag || config.EnvBool(os.Getenv, "EO_DEBUG"))
	log := logging.Get("models")

	colors := colorsEnabled(false, os.Getenv, stdout)
	applyColorProfile(colors)
	theme := render.ThemeFor(colors)

	cfgPath := config.Path()
	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("config unreadable, using defaults")
	}
	cfg := config.Resolve(*urlFlag, "", os.Getenv, fileCfg)

	client := ollama.New(cfg.URL, serviceCheckTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), serviceCheckTimeout)
	defer cancel()
	models, err := client.Tags(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("service check failed")
		fmt.Fprintln(stderr, theme.Error.Render("Ollama service not started or invalid url"))
		return 1
	}
	if len(models) == 0 {
		fmt.Fprintln(stdout, theme.Muted.Render("No models installed."))
		return 0
	}

	if !isTTYWriter(stdout) {
		fmt.Fprint(stdout, listModels(models, outputWidth(0, stdout)))
		return 0
	}

	name, chosen, err := picker.Run(models)
	if err != nil {
		fmt.Fprintf(stderr, "eo: %v\n", err)
		return 2
	}
	if !chosen {
		return 0
	}

	cfg.Model = name
	if err := config.Save(cfgPath, cfg); err != nil {
		fmt.Fprintf(stderr, "eo: saving config: %v\n", err)
		return 2
	}
	fmt.Fprintf(stdout, "Default model set to %s\n", theme.Success.Render(name))
	return 0
}

// listModels renders the installed models as an aligned table for
// non-interactive stdout.
func listModels(models []ollama.Model, width int) string {
	var b strings.Builder
	b.WriteString("NAME SIZE FAMILY\n")
	for _, m := range models {
		family := m.Details.Family
		if family == "" {
			family = "-"
		}
		fmt.Fprintf(&b, "%s %s %s\n", m.Name, sizeLabel(m.Size), family)
	}
	return render.Table(b.String(), width)
}

// sizeLabel formats a byte count without spaces so the value stays a
// single table cell.
func sizeLabel(bytes int64) string {
	const (
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1fGB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.0fMB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
