// Package figmaharvester extracts localizable text, text styles and solid
// colors from the current selection of a design document and hands them to a
// companion panel for preview and export. It can also move the viewport to a
// node by id when the panel asks for it.
//
// The CLI lives in cmd/figma-harvester; this root package exposes the plugin
// logic as a Go API that works against any [host.Host] implementation.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmaharvester:
//
//	import "github.com/kataras/figma-harvester" // package figmaharvester
//
// # Quick start
//
// Load a document saved from the Figma API, select some frames and run a
// command:
//
//	doc, err := figmaharvester.OpenDocument("design.json", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas, err := figmaharvester.OpenCanvas(doc, "", nil, figma.CanvasOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas.Select("12:34", "12:90")
//
//	plugin := figmaharvester.New(canvas, figmaharvester.Options{})
//	result, err := plugin.Run(ctx, figmaharvester.ExtractText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.State == figmaharvester.StatePanelOpen {
//	    frames := result.Message.Data.([]extractor.FrameSnapshot)
//	    arb, _ := formatter.ToARB(frames, "en")
//	    os.Stdout.Write(arb)
//	}
//
// # Commands
//
// [Plugin.Run] is a one-shot state machine per call. An empty extraction
// notifies the user and closes the session ([StateClosed]); otherwise the
// panel opens and receives exactly one message ([StatePanelOpen]). Unknown
// commands leave the session untouched ([StateIdle]).
//
// # Panel messages
//
// The panel may ask to jump to a node with {"type":"zoom-via-id","nodeId":"..."};
// pass the raw payload to [Plugin.HandleMessage]. Lookup failures end up as
// error notifications on the host, never as returned errors.
//
// The same commands are available to agents as MCP tools, see package
// mcpserver and "figma-harvester serve".
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package figmaharvester
