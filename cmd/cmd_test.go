package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModel = `<document>
  <model name="Device:2.15">
    <object name="Device.WiFi." access="readOnly">
      <description>WiFi.</description>
      <parameter name="Enable" access="readWrite">
        <description>Enables {{param}}.</description>
        <syntax><boolean/></syntax>
      </parameter>
      <parameter name="SSID" access="readWrite">
        <description>Name.</description>
        <syntax><string><size maxLength="32"/></string></syntax>
      </parameter>
    </object>
    <profile name="WiFi:1">
      <object ref="Device.WiFi." requirement="present"/>
    </profile>
  </model>
</document>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		inputPath, outputPath, strict, cfgFile, verbose = "", "", false, "", false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertThenInspect(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "model.xml")
	output := filepath.Join(dir, "model.xlsx")
	require.NoError(t, os.WriteFile(input, []byte(sampleModel), 0o644))

	out, err := execute(t, "convert", "-f", input, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+output)
	assert.Contains(t, out, "1 objects, 2 parameters -> 2 model rows")
	assert.FileExists(t, output)

	out, err = execute(t, "inspect", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Title:    Device:2.15")
	assert.Contains(t, out, `Sheet "Model": 2 data rows, 3 merged ranges`)
	assert.Contains(t, out, `Sheet "Profiles": 1 data rows, 0 merged ranges`)
}

func TestConvertRequiresFile(t *testing.T) {
	_, err := execute(t, "convert")
	assert.Error(t, err)
}

func TestConvertUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "model.xml")
	output := filepath.Join(dir, "from-config.xlsx")
	cfg := filepath.Join(dir, "excelifier.yaml")
	require.NoError(t, os.WriteFile(input, []byte(sampleModel), 0o644))
	require.NoError(t, os.WriteFile(cfg, []byte("default_output: "+output+"\nmodel_sheet: Objects\n"), 0o644))

	_, err := execute(t, "convert", "--config", cfg, "-f", input)
	require.NoError(t, err)

	out, err := execute(t, "inspect", output)
	require.NoError(t, err)
	assert.Contains(t, out, `Sheet "Objects"`)
}

func TestInspectMissingWorkbook(t *testing.T) {
	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "none.xlsx"))
	assert.ErrorContains(t, err, "workbook not found")
}
