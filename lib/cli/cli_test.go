package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := New()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config-json", "{}"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Range
		wantErr bool
	}{
		{name: "caret", input: "0:3", want: model.CollapsedRange(model.Position{Block: 0, Offset: 3})},
		{
			name:  "range",
			input: "1:4-0:2",
			want:  model.NewRange(model.Position{Block: 1, Offset: 4}, model.Position{Block: 0, Offset: 2}),
		},
		{name: "missing colon", input: "3", wantErr: true},
		{name: "bad block", input: "x:1", wantErr: true},
		{name: "bad offset", input: "0:1-0:y", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderHighlightsLinkAtCaret(t *testing.T) {
	path := writeDoc(t, `<p>Lei <span xlink:href="urn:lex:br:lei:2008">11.887</span></p>`)

	out, err := run(t, "render", path, "--select", "0:6")
	require.NoError(t, err)
	assert.Equal(t,
		`<p>Lei <span class="ck-link_selected lexml-url" xlink:href="urn:lex:br:lei:2008">11.887</span></p>`+"\n"+
			"11.887 -> urn:lex:br:lei:2008\n",
		out)
}

func TestRenderWithoutLink(t *testing.T) {
	path := writeDoc(t, `<p>plain</p>`)

	out, err := run(t, "render", path, "--select", "0:2")
	require.NoError(t, err)
	assert.Equal(t, "<p>plain</p>\nno link at selection\n", out)
}

func TestRenderExecutesCommand(t *testing.T) {
	path := writeDoc(t, `<p>see the law</p>`)

	out, err := run(t, "render", path, "--select", "0:8-0:11", "--command", "urn", "--arg", "urn:lex:br:lei", "--data")
	require.NoError(t, err)
	assert.Equal(t, `<p>see the <span class="lexml-url" xlink:href="urn:lex:br:lei">law</span></p>`+"\n", out)
}

func TestRenderErrors(t *testing.T) {
	path := writeDoc(t, `<p>plain</p>`)

	_, err := run(t, "render", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)

	_, err = run(t, "render", path, "--select", "nope")
	require.Error(t, err)

	_, err = run(t, "render", path, "--command", "nope")
	require.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	out, err := run(t, "config", "get", "urnLink.trustedScheme")
	require.NoError(t, err)
	assert.Equal(t, "urn:lex:br\n", out)

	_, err = run(t, "config", "get", "nope")
	require.Error(t, err)

	out, err = run(t, "config", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "URNLINK_URNLINK_ATTRIBUTEKEY")

	out, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "ck-link_selected")

	out, err = run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, `"urnLink.placeholder": "#"`)
}
