package figma

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/figma-harvester/pkg/extractor"
	"github.com/kataras/figma-harvester/pkg/host"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadDocumentFile("testdata/login.json", 0)
	require.NoError(t, err)
	return doc
}

func newFixtureCanvas(t *testing.T, opts CanvasOptions) *Canvas {
	t.Helper()
	c, err := NewCanvas(loadFixture(t), "", opts)
	require.NoError(t, err)
	return c
}

func ids(nodes []host.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

func TestDocumentPages(t *testing.T) {
	doc := loadFixture(t)
	assert.Equal(t, "Mobile App", doc.Name)
	require.Len(t, doc.Pages(), 2)

	tests := []struct {
		ref     string
		wantID  string
		wantErr bool
	}{
		{ref: "", wantID: "0:1"},
		{ref: "Archive", wantID: "0:2"},
		{ref: "0:2", wantID: "0:2"},
		{ref: "Drafts", wantErr: true},
	}
	for _, tt := range tests {
		page, err := doc.Page(tt.ref)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrNoPage)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.wantID, page.ID)
	}
}

func TestLoadDocumentShapes(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantPages int
		wantNode  string
		wantErr   bool
	}{
		{
			name:      "bare frame",
			payload:   `{"id":"5:1","name":"Card","type":"FRAME"}`,
			wantPages: 1,
			wantNode:  "5:1",
		},
		{
			name:      "bare page",
			payload:   `{"id":"0:7","name":"Page","type":"CANVAS","children":[{"id":"5:1","name":"Card","type":"FRAME"}]}`,
			wantPages: 1,
			wantNode:  "5:1",
		},
		{
			name:      "nodes response",
			payload:   `{"name":"File","nodes":{"6:1":{"document":{"id":"6:1","name":"B","type":"FRAME"}},"5:1":{"document":{"id":"5:1","name":"A","type":"FRAME"}},"7:1":null}}`,
			wantPages: 1,
			wantNode:  "6:1",
		},
		{
			name:    "no node",
			payload: `{"name":"nothing"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := LoadDocument(strings.NewReader(tt.payload), 8)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, doc.Pages(), tt.wantPages)
			_, ok := doc.Lookup(tt.wantNode)
			assert.True(t, ok)
		})
	}
}

func TestLoadDocumentNodesResponseOrder(t *testing.T) {
	payload := `{"nodes":{"6:1":{"document":{"id":"6:1","name":"B","type":"FRAME"}},"5:1":{"document":{"id":"5:1","name":"A","type":"FRAME"}}}}`
	doc, err := LoadDocument(strings.NewReader(payload), 0)
	require.NoError(t, err)

	c, err := NewCanvas(doc, "", CanvasOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"5:1", "6:1"}, ids(c.Selection()))
}

func TestDocumentLookupCached(t *testing.T) {
	doc := loadFixture(t)

	n, ok := doc.Lookup("9:2")
	require.True(t, ok)
	assert.Equal(t, "Hint", n.Name)

	again, ok := doc.Lookup("9:2")
	require.True(t, ok)
	assert.Same(t, n, again)
	assert.True(t, doc.lookups.Contains("9:2"))

	_, ok = doc.Lookup("404:1")
	assert.False(t, ok)
	assert.False(t, doc.lookups.Contains("404:1"))
}

func TestCanvasDefaultSelection(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})

	sel := c.Selection()
	assert.Equal(t, []string{"1:1", "2:1", "3:1"}, ids(sel))
	assert.Equal(t, host.KindContainer, sel[0].Kind())
	assert.Equal(t, host.KindContainer, sel[1].Kind())
	assert.Equal(t, host.KindText, sel[2].Kind())
}

func TestCanvasSelect(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})

	require.NoError(t, c.Select("2-1", "1:3"))
	assert.Equal(t, []string{"2:1", "1:3"}, ids(c.Selection()))

	assert.Error(t, c.Select("9:1"), "node on another page")
	assert.Error(t, c.Select("0:1"), "the page itself")
	assert.ErrorIs(t, c.Select("frame"), ErrInvalidNodeID)

	c.SelectAll()
	assert.Len(t, c.Selection(), 3)
}

func TestCanvasFindAllAndTypography(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})
	login, ok := c.Selection()[0].(host.Container)
	require.True(t, ok)

	texts := login.FindAll(host.IsText)
	require.Equal(t, []string{"1:2", "1:4", "1:6"}, ids(texts))

	title := texts[0].(host.TextLeaf)
	assert.Equal(t, "Welcome back", title.Characters())
	assert.Equal(t, "Roboto", title.FontFamily())
	assert.Equal(t, "Bold", title.FontStyle())
	assert.Equal(t, 32.0, title.FontSize())
	assert.Equal(t, 700.0, title.FontWeight())

	assert.Equal(t, "Regular", texts[1].(host.TextLeaf).FontStyle())

	all := login.FindAll(func(host.Node) bool { return true })
	assert.Equal(t, []string{"1:2", "1:3", "1:4", "1:5", "1:6"}, ids(all))
}

func TestCanvasContainerTypes(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{ContainerTypes: []string{"FRAME", "GROUP"}})
	require.NoError(t, c.Select("1:3"))

	group := c.Selection()[0]
	assert.Equal(t, host.KindContainer, group.Kind())
	_, ok := group.(host.Container)
	assert.True(t, ok)
}

func TestCanvasSelectionColors(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})
	require.NoError(t, c.Select("1:1"))

	paints := c.SelectionColors()
	assert.Equal(t, []host.Paint{
		{Type: host.PaintSolid, Color: host.RGB{R: 1, G: 1, B: 1}},
		{Type: host.PaintSolid},
		{Type: host.PaintSolid},
		{Type: host.PaintGradientLinear},
		{Type: host.PaintSolid, Color: host.RGB{R: 1}},
	}, paints)

	assert.Equal(t, []extractor.ColorEntry{
		{Hex: "#ffffff", Name: "#ffffff"},
		{Hex: "#000000", Name: "#000000"},
		{Hex: "#ff0000", Name: "#ff0000"},
	}, extractor.ExtractColors(paints))
}

func TestCanvasNodeByID(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})
	ctx := context.Background()

	n, err := c.NodeByID(ctx, "9-2")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "9:2", n.ID())

	n, err = c.NodeByID(ctx, "404:1")
	assert.NoError(t, err)
	assert.Nil(t, n)

	_, err = c.NodeByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidNodeID)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.NodeByID(cancelled, "1:1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCanvasScrollAndZoomIntoView(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})
	ctx := context.Background()
	assert.Equal(t, Viewport{Zoom: 1}, c.Viewport())

	login, err := c.NodeByID(ctx, "1:1")
	require.NoError(t, err)
	c.ScrollAndZoomIntoView(login)
	assert.Equal(t, Viewport{X: 180, Y: 400, Zoom: 1.125}, c.Viewport())

	archived, err := c.NodeByID(ctx, "9:1")
	require.NoError(t, err)
	c.ScrollAndZoomIntoView(archived)
	assert.Equal(t, Viewport{X: -1280, Y: 725, Zoom: 1}, c.Viewport())

	settings, err := c.NodeByID(ctx, "2:1")
	require.NoError(t, err)
	c.ScrollAndZoomIntoView(login, settings)
	assert.Equal(t, Viewport{X: 380, Y: 400, Zoom: 1.125}, c.Viewport())

	// No bounding box: the viewport stays where it is.
	forgot, err := c.NodeByID(ctx, "1:4")
	require.NoError(t, err)
	c.ScrollAndZoomIntoView(forgot)
	assert.Equal(t, Viewport{X: 380, Y: 400, Zoom: 1.125}, c.Viewport())
}

func TestCanvasPanelLifecycle(t *testing.T) {
	var notified []Notification
	var posted []any
	c := newFixtureCanvas(t, CanvasOptions{
		OnNotify:  func(n Notification) { notified = append(notified, n) },
		OnMessage: func(msg any) { posted = append(posted, msg) },
	})

	assert.ErrorIs(t, c.PostMessage("early"), ErrPanelNotOpen)

	require.NoError(t, c.ShowUI(host.UIOptions{Resource: "arb", Width: 600, Height: 600}))
	assert.Equal(t, Panel{Resource: "arb", Width: 600, Height: 600, Open: true}, c.Panel())

	require.NoError(t, c.PostMessage("hello"))
	assert.Equal(t, []any{"hello"}, c.Messages())
	assert.Equal(t, []any{"hello"}, posted)

	c.Notify("Done", host.NotifyOptions{})
	c.Notify("Oops", host.NotifyOptions{Error: true})
	assert.Equal(t, []Notification{{Message: "Done"}, {Message: "Oops", Error: true}}, c.Notifications())
	assert.Equal(t, c.Notifications(), notified)

	c.ClosePlugin()
	assert.True(t, c.Closed())
	assert.False(t, c.Panel().Open)
	assert.ErrorIs(t, c.PostMessage("late"), ErrPluginClosed)
	assert.ErrorIs(t, c.ShowUI(host.UIOptions{}), ErrPluginClosed)
}

func TestCanvasTextExtraction(t *testing.T) {
	c := newFixtureCanvas(t, CanvasOptions{})

	frames := extractor.ExtractText(c.Selection(), extractor.DefaultMaxKeyLength)
	require.Len(t, frames, 2)

	assert.Equal(t, []extractor.TextEntry{
		{Key: "loginScreenWelcomeBack", Content: "Welcome back"},
		{Key: "loginScreenForgotPassword", Content: "Forgot password?"},
		{Key: "loginScreenOk", Content: "OK"},
	}, frames[0].TextNodes)
	assert.Equal(t, []extractor.TextEntry{
		{Key: "settingsSaveChanges", Content: "Save changes"},
	}, frames[1].TextNodes)
}
