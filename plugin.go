package figmaharvester

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kataras/figma-harvester/pkg/config"
	"github.com/kataras/figma-harvester/pkg/extractor"
	"github.com/kataras/figma-harvester/pkg/host"
	"github.com/kataras/figma-harvester/pkg/protocol"
)

// Version is the release of the plugin and its CLI.
const Version = "0.1.0"

// Command is a plugin menu command delivered by the host.
type Command string

// Commands understood by Run.
const (
	ExtractText       Command = "extract-text"
	ExtractTextStyles Command = "extract-text-styles"
	ExtractColors     Command = "extract-colors"
)

// Commands lists every command in menu order.
var Commands = []Command{ExtractText, ExtractTextStyles, ExtractColors}

// State is where a command run ended.
type State int

const (
	// StateIdle means the command was not recognized and nothing happened.
	StateIdle State = iota
	// StatePanelOpen means the panel was opened and received the snapshot.
	StatePanelOpen
	// StateClosed means the extraction was empty, the user was notified and
	// the session was closed.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StatePanelOpen:
		return "panel-open"
	case StateClosed:
		return "closed"
	default:
		return "idle"
	}
}

// Options configures a Plugin.
type Options struct {
	// Config defaults to config.Default().
	Config *config.Config
	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Plugin handles the commands of one plugin session against a host.
type Plugin struct {
	host host.Host
	opts Options
}

// New returns a Plugin bound to h.
func New(h host.Host, opts Options) *Plugin {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	return &Plugin{host: h, opts: opts}
}

// Result describes the outcome of one command run.
type Result struct {
	// SessionID identifies the panel session in logs.
	SessionID string
	Command   Command
	State     State
	// Message is what was posted to the panel, set when State is StatePanelOpen.
	Message *protocol.Message
	// Notice is the notification shown, set when State is StateClosed.
	Notice string
}

// Run handles one command: it runs the matching extractor and either opens
// the panel with the snapshot or, when nothing was found, notifies the user
// and closes the session. Unknown commands are ignored.
//
// The returned error is non-nil only when the host fails to open or post to
// the panel.
func (p *Plugin) Run(ctx context.Context, cmd Command) (*Result, error) {
	result := &Result{SessionID: uuid.NewString(), Command: cmd}

	msg, count, ok := p.extract(cmd)
	if !ok {
		p.opts.logWarn("Ignoring unknown command %q", cmd)
		return result, nil
	}

	panel, err := p.opts.Config.Panel(string(cmd))
	if err != nil {
		return nil, err
	}

	if count == 0 {
		p.opts.logInfo("[%s] %s: nothing found, closing", result.SessionID, cmd)
		p.host.Notify(panel.EmptyMessage, host.NotifyOptions{})
		p.host.ClosePlugin()
		result.State = StateClosed
		result.Notice = panel.EmptyMessage
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.opts.logInfo("[%s] %s: %d item(s), opening %s panel (%dx%d)",
		result.SessionID, cmd, count, panel.UI, panel.Width, panel.Height)

	if err := p.host.ShowUI(host.UIOptions{Resource: panel.UI, Width: panel.Width, Height: panel.Height}); err != nil {
		p.opts.logError("Opening %s panel failed: %v", panel.UI, err)
		return nil, fmt.Errorf("show %s panel: %w", panel.UI, err)
	}
	if err := p.host.PostMessage(msg); err != nil {
		p.opts.logError("Posting %s failed: %v", msg.Type, err)
		return nil, fmt.Errorf("post %s: %w", msg.Type, err)
	}

	result.State = StatePanelOpen
	result.Message = &msg
	return result, nil
}

// extract runs the extractor of cmd and reports the number of top-level
// entries it produced.
func (p *Plugin) extract(cmd Command) (protocol.Message, int, bool) {
	switch cmd {
	case ExtractText:
		frames := extractor.ExtractText(p.host.Selection(), p.opts.Config.MaxKeyLength)
		return protocol.Message{Type: protocol.PreviewText, Data: frames}, len(frames), true
	case ExtractTextStyles:
		styles := extractor.ExtractTextStyles(p.host.Selection())
		return protocol.Message{Type: protocol.PreviewTextStyles, Data: styles}, len(styles), true
	case ExtractColors:
		colors := extractor.ExtractColors(p.host.SelectionColors())
		return protocol.Message{Type: protocol.LoadColors, Data: colors}, len(colors), true
	default:
		return protocol.Message{}, 0, false
	}
}
