package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/output"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *types.Plan {
	plan := &types.Plan{}
	plan.AddCopy("magelocal", types.CopyStep{From: "app/code/local/Foo", To: "code", Kind: types.CopyDirectory})
	plan.AddMapping("magelocal", types.DirectoryMapping("code/Bar", "app/code/local/Foo/Bar"))
	plan.AddMapping("magelib", types.WildcardMapping("lib", "lib"))
	return plan
}

func TestNewRenderer_AutoOnBufferIsText(t *testing.T) {
	r := output.NewRenderer(&bytes.Buffer{}, output.FormatAuto)
	assert.Equal(t, output.FormatText, r.Format())
}

func TestRenderGenerated(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, output.FormatText)

	require.NoError(t, r.RenderGenerated("/pkg/modman/modman", 3))
	assert.Equal(t, "Modman file generated: /pkg/modman/modman\n", buf.String())
}

func TestRenderFailure(t *testing.T) {
	err := errors.New(errors.ErrUnknownTarget, "unhandled content target: magefoo").
		WithDetail("target", "magefoo")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewRenderer(&buf, output.FormatText).RenderFailure(err))
		assert.Equal(t, "Generator failed: [UNKNOWN_TARGET] unhandled content target: magefoo\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewRenderer(&buf, output.FormatJSON).RenderFailure(err))

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
		assert.Equal(t, "UNKNOWN_TARGET", payload["code"])
		assert.Equal(t, map[string]interface{}{"target": "magefoo"}, payload["details"])
	})
}

func TestRenderPlan_Text(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, output.FormatText)

	require.NoError(t, r.RenderPlan(samplePlan(), true))

	out := buf.String()
	for _, want := range []string{
		"Dry run",
		"Copies", "app/code/local/Foo", "directory",
		"Manifest", "code/Bar", "app/code/local/Foo/Bar", "lib/*", "lib/", "magelib",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "plain text carries no escape sequences")
}

func TestRenderPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, output.FormatText)

	require.NoError(t, r.RenderPlan(&types.Plan{}, false))
	assert.Equal(t, "Copies\n(none)\nManifest\n(none)\n", buf.String())
}

func TestRenderPlan_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, output.FormatJSON)

	plan := samplePlan()
	require.NoError(t, r.RenderPlan(plan, false))

	var decoded types.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, plan.Lines(), decoded.Lines())
	assert.Equal(t, plan.Copies(), decoded.Copies())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Format
		wantErr bool
	}{
		{"", output.FormatAuto, false},
		{"auto", output.FormatAuto, false},
		{"TERM", output.FormatTerminal, false},
		{"plain", output.FormatText, false},
		{"json", output.FormatJSON, false},
		{"xml", output.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}
