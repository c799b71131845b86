package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	figmaharvester "github.com/kataras/figma-harvester"
	"github.com/kataras/figma-harvester/pkg/config"
	"github.com/kataras/figma-harvester/pkg/figma"
	"github.com/kataras/figma-harvester/pkg/mcpserver"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figmaharvester.Version

// errNotified ends a command whose failure the user already saw as a
// notification.
var errNotified = errors.New("failure was notified")

var (
	documentPath string
	selection    string
	page         string
	format       string
	configPath   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errNotified) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "figma-harvester",
		Short: "Extract localizable text, text styles and colors from Figma documents",
		Long: "A tool that runs the harvester plugin commands against a Figma document exported from the Figma API " +
			"and prints the panel payload as JSON, markdown, ARB or Dart",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&documentPath, "document", "d", "", "Figma document JSON (GET /v1/files or /v1/files/:key/nodes response) (required)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (optional, overrides the defaults)")

	runCmd := &cobra.Command{
		Use:       "run <command>",
		Short:     "Run a plugin command on the selection",
		Long:      "Run extract-text, extract-text-styles or extract-colors on the selection and print what the panel receives",
		Args:      cobra.ExactArgs(1),
		ValidArgs: commandNames(),
		RunE:      run,
	}
	runCmd.Flags().StringVarP(&selection, "select", "s", "", "Comma-separated node IDs or a Figma URL (default: every top-level node of the page)")
	runCmd.Flags().StringVar(&page, "page", "", "Page ID or name (default: the first page)")
	runCmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json, markdown, arb, dart")

	zoomCmd := &cobra.Command{
		Use:   "zoom <node-id>",
		Short: "Scroll and zoom the viewport to a node",
		Args:  cobra.ExactArgs(1),
		RunE:  zoom,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plugin commands as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "figma-harvester version %s\n", version)
		},
	}

	rootCmd.AddCommand(runCmd, zoomCmd, serveCmd, versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	cyan.Fprintln(stderr, "\n🎨 Figma Harvester")
	cyan.Fprintln(stderr, "==================")

	if !validFormat(format) {
		return fmt.Errorf("unknown format %q", format)
	}

	cfg, doc, err := load()
	if err != nil {
		return err
	}
	canvas, err := figmaharvester.OpenCanvas(doc, page, cfg, figma.CanvasOptions{OnNotify: notifier(stderr)})
	if err != nil {
		return err
	}

	if selection != "" {
		ids, err := figma.ParseNodeIDs(selection)
		if err != nil {
			return err
		}
		if err := canvas.Select(ids...); err != nil {
			return err
		}
	}

	p := figmaharvester.New(canvas, figmaharvester.Options{Config: cfg, Logger: &cliLogger{w: stderr}})
	result, err := p.Run(cmd.Context(), figmaharvester.Command(args[0]))
	if err != nil {
		return err
	}

	switch result.State {
	case figmaharvester.StateIdle:
		return fmt.Errorf("unknown command %q, expected one of %v", args[0], commandNames())
	case figmaharvester.StateClosed:
		return nil
	}

	out, err := render(format, result.Message, doc.Name, cfg.Locale)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	green.Fprintf(stderr, "\n✨ %s panel (%s) received %s\n\n", canvas.Panel().Resource, result.SessionID, result.Message.Type)
	return nil
}

func zoom(cmd *cobra.Command, args []string) error {
	cfg, doc, err := load()
	if err != nil {
		return err
	}
	canvas, err := figmaharvester.OpenCanvas(doc, "", cfg, figma.CanvasOptions{OnNotify: notifier(cmd.ErrOrStderr())})
	if err != nil {
		return err
	}

	p := figmaharvester.New(canvas, figmaharvester.Options{Config: cfg, Logger: &cliLogger{w: cmd.ErrOrStderr()}})
	if !p.NavigateTo(cmd.Context(), args[0]) {
		return errNotified
	}

	data, err := json.MarshalIndent(canvas.Viewport(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, doc, err := load()
	if err != nil {
		return err
	}

	// stdout carries the MCP protocol, everything else goes to stderr.
	logger := &cliLogger{w: cmd.ErrOrStderr()}
	logger.Infof("Serving %q (%d pages) over stdio", doc.Name, len(doc.Pages()))

	s := mcpserver.NewServer(doc, mcpserver.Options{Config: cfg, Version: version, Logger: logger})
	return s.ServeStdio()
}

// load reads the configuration and the document named by the flags.
func load() (*config.Config, *figma.Document, error) {
	if documentPath == "" {
		return nil, nil, errors.New(`required flag "document" not set`)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	doc, err := figmaharvester.OpenDocument(documentPath, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, doc, nil
}

func commandNames() []string {
	names := make([]string, len(figmaharvester.Commands))
	for i, c := range figmaharvester.Commands {
		names[i] = string(c)
	}
	return names
}

// notifier renders host notifications on w.
func notifier(w io.Writer) func(figma.Notification) {
	return func(n figma.Notification) {
		if n.Error {
			color.New(color.FgRed).Fprintf(w, "✗ %s\n", n.Message)
			return
		}
		color.New(color.FgCyan).Fprintf(w, "🔔 %s\n", n.Message)
	}
}

// cliLogger implements figmaharvester.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
