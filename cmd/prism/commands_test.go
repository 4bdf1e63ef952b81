package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/placement"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

const documentYAML = `version: "1.0"
settings:
  feedback_duration: 1s
elements:
  - name: toolbar
    component: box
    style:
      layout: flex
      gap: md
      padding: true
      padding_x: lg
    attrs:
      id: main-toolbar
      data-testid: toolbar
      onclick: nope
  - name: modal
    component: modal
    overlay: true
    style:
      rounded: lg
      size: md
    placement:
      position: fixed
      placement: top-center
      margin_top: 2
`

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prism.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestComposeCommandPrintsClasses(t *testing.T) {
	path := writeDocument(t, documentYAML)

	out, _, err := executeCommand(newRootCmd(), "compose", path)
	require.NoError(t, err)

	assert.Equal(t,
		"toolbar: box--flex box--gap-md box--padding-x-lg\n"+
			"modal: modal--rounded-lg modal--size-md\n",
		out)
}

func TestComposeCommandPrintsAttrs(t *testing.T) {
	path := writeDocument(t, documentYAML)

	out, _, err := executeCommand(newRootCmd(), "compose", "--attrs", path)
	require.NoError(t, err)

	assert.Contains(t, out, "  attrs: data-testid=toolbar id=main-toolbar\n")
	assert.NotContains(t, out, "onclick")
}

func TestComposeCommandVerboseLogs(t *testing.T) {
	path := writeDocument(t, documentYAML)

	_, stderr, err := executeCommand(newRootCmd(), "--verbose", "compose", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "composed element")
}

func TestPlaceCommandPrintsGeometry(t *testing.T) {
	path := writeDocument(t, documentYAML)

	out, _, err := executeCommand(newRootCmd(), "place", path)
	require.NoError(t, err)

	var placed []placedElement
	require.NoError(t, yaml.Unmarshal([]byte(out), &placed))
	require.Len(t, placed, 1)
	assert.Equal(t, "modal", placed[0].Name)
	assert.Equal(t, placement.Raw("0"), placed[0].Geometry.Top)
	assert.Equal(t, placement.Raw("50%"), placed[0].Geometry.Left)
	assert.Equal(t, "translateX(-50%)", placed[0].Geometry.Transform)
	assert.Equal(t, placement.Px(2), placed[0].Geometry.Margin.Top)
}

func TestStrictModeRejectsUnknownVariants(t *testing.T) {
	path := writeDocument(t, `version: "1.0"
elements:
  - name: card
    component: box
    style:
      shadow: enormous
`)

	out, _, err := executeCommand(newRootCmd(), "compose", path)
	require.NoError(t, err)
	assert.Equal(t, "card: box--shadow-enormous\n", out)

	_, _, err = executeCommand(newRootCmd(), "--strict", "compose", path)
	require.Error(t, err)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Contains(t, err.Error(), "Suggestion:")

	var invalid *prismerrors.InvalidConfigurationError
	assert.True(t, errors.As(err, &invalid))
}

func TestComposeCommandMissingFile(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "compose", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to compose")
}

func TestComposeCommandRequiresFile(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "compose")
	require.Error(t, err)
}

func TestShowcaseFromDocument(t *testing.T) {
	doc, err := config.ParseBytes("inline.yaml", []byte(documentYAML), config.ParseOptions{})
	require.NoError(t, err)

	opts := showcaseFromDocument(doc, logger.Nop())
	assert.Equal(t, time.Second, opts.FeedbackDuration)
	require.NotNil(t, opts.Placement)
	assert.Equal(t, placement.TopCenter, opts.Placement.Placement)
	assert.Equal(t, "lg", string(opts.ModalStyle.Rounded))

	empty := showcaseFromDocument(nil, nil)
	assert.Nil(t, empty.Placement)
	assert.Zero(t, empty.FeedbackDuration)
}

func TestDiffCommand(t *testing.T) {
	before := writeDocument(t, documentYAML)
	after := writeDocument(t, strings.Replace(documentYAML, "rounded: lg", "rounded: md", 1))

	out, _, err := executeCommand(newRootCmd(), "diff", before, before)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = executeCommand(newRootCmd(), "diff", before, after)
	require.NoError(t, err)
	assert.Contains(t, out, "-modal: modal--rounded-lg modal--size-md\n")
	assert.Contains(t, out, "+modal: modal--rounded-md modal--size-md\n")
	assert.Contains(t, out, " toolbar: box--flex box--gap-md box--padding-x-lg\n")

	_, _, err = executeCommand(newRootCmd(), "diff", "--exit-code", before, after)
	require.Error(t, err)
	assert.ErrorIs(t, err, errClassesDiffer)
}
