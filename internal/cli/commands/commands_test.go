package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gosdmx/i18n"
)

const codelistMsg = `{"meta":{"id":"I","prepared":"2024-05-01T10:00:00Z","sender":{"id":"S"}},` +
	`"data":{"codelists":[{"id":"CL_FREQ","agencyID":"SDMX","version":"1.0","codes":[{"id":"A"},{"id":"M"}]},` +
	`{"id":"CL_AREA","isPartial":true,"codes":[{"id":"DE"}]}]}}`

const codelistYAML = `meta:
  id: I
  prepared: "2024-05-01T10:00:00Z"
  sender:
    id: S
data:
  codelists:
    - id: CL_FREQ
      codes:
        - id: A
`

const observations = "STRUCTURE,STRUCTURE_ID,STRUCTURE_NAME,ACTION,FREQ: Frequency,TIME_PERIOD,OBS_VALUE\n" +
	"dataflow,ECB:EXR(1.0),Exchange rates,R,A,2020-Q1,1.25\n" +
	"dataflow,ECB:EXR(1.0),Exchange rates,X,M,2020-03,1.30\n" +
	"dataflow,ECB:EXR(1.0),Exchange rates,,M,2020-04,1.31\n"

const referenceTable = "STRUCTURE,STRUCTURE_ID,METADATASET_ID,ACTION,TARGET_TYPES,TARGET_IDS,CONTACT\n" +
	"metadataflow,ECB:MF(1.0),SET1,A,Dataflow;Dataflow,ECB:EXR(1.0);ECB:ICP(1.0),Jane\n"

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes the root command in an isolated home and working directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Cleanup(func() { i18n.SetLanguage("en") })
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "sdmx", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.True(t, cmd.SilenceUsage)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"check", "fmt", "schemes", "csv"} {
		assert.Contains(t, names, want)
	}
}

func TestCheck_Valid(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.json", codelistMsg)

	out, _, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok "+path+"\n", out)
}

func TestCheck_YAMLByExtension(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.yaml", codelistYAML)

	out, _, err := run(t, "check", "--kind", "structure", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok ")
}

func TestCheck_Invalid(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "bad.json", `{"data":{}}`)

	_, errOut, err := run(t, "check", path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "1 issue")
	assert.Contains(t, errOut, "error /meta [required] required property missing")
}

func TestCheck_Language(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "bad.json", `{"data":{}}`)

	_, errOut, err := run(t, "check", "--lang", "ja", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "必須プロパティが不足しています")
}

func TestCheck_UnknownKind(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.json", codelistMsg)

	_, _, err := run(t, "check", "--kind", "registry", path)
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "kind must be one of data, metadata, structure")
}

func TestCheck_MissingFile(t *testing.T) {
	workdir(t)
	_, _, err := run(t, "check", "nope.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read nope.json")
}

func TestCheck_Stdin(t *testing.T) {
	workdir(t)
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(codelistMsg))
	cmd.SetArgs([]string{"check", "-"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ok -\n", out.String())
}

func TestCheck_InvalidConfig(t *testing.T) {
	dir := workdir(t)
	writeFile(t, dir, "sdmx.yaml", "log:\n  level: loud\n")
	path := writeFile(t, dir, "cl.json", codelistMsg)

	_, _, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestFmt_CompactJSON(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.json", codelistMsg)

	out, _, err := run(t, "fmt", "--indent", "0", path)
	require.NoError(t, err)
	assert.JSONEq(t, codelistMsg, out)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestFmt_IndentFromConfig(t *testing.T) {
	dir := workdir(t)
	writeFile(t, dir, "sdmx.yaml", "output:\n  indent: 4\n")
	path := writeFile(t, dir, "cl.json", codelistMsg)

	out, _, err := run(t, "fmt", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\n    \"meta\": {")
	assert.JSONEq(t, codelistMsg, out)
}

func TestFmt_YAMLOutput(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.json", codelistMsg)

	out, _, err := run(t, "fmt", "-o", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "codelists:")
	assert.Contains(t, out, "id: CL_FREQ")
}

func TestFmt_YAMLInputToJSON(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.yml", codelistYAML)

	out, _, err := run(t, "fmt", "--indent", "0", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"meta":{"id":"I","prepared":"2024-05-01T10:00:00Z","sender":{"id":"S"}},"data":{"codelists":[{"id":"CL_FREQ","codes":[{"id":"A"}]}]}}`, out)
}

func TestFmt_Write(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.json", codelistMsg)

	out, _, err := run(t, "fmt", "--write", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, codelistMsg, string(b))
	assert.Contains(t, string(b), "\n  \"meta\"")
}

func TestSchemes(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "cl.json", codelistMsg)

	out, _, err := run(t, "schemes", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "codelists")
	assert.Contains(t, lines[0], "SDMX:CL_FREQ(1.0)")
	assert.Contains(t, lines[0], "partial=-")
	assert.Contains(t, lines[0], "items=2")
	assert.Contains(t, lines[1], "CL_AREA")
	assert.Contains(t, lines[1], "partial=true")
	assert.Contains(t, lines[1], "items=1")
}

func decodeLines(t *testing.T, out string) []csvLine {
	t.Helper()
	var lines []csvLine
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		if l == "" {
			continue
		}
		var line csvLine
		require.NoError(t, gojson.Unmarshal([]byte(l), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestCSV_Data(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "obs.csv", observations)

	out, errOut, err := run(t, "csv", "--labels", "both", path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, errOut, "rejected line 3")

	lines := decodeLines(t, out)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Line)
	assert.Equal(t, "dataflow", lines[0].Structure)
	assert.Equal(t, "ECB:EXR(1.0)", lines[0].StructureID)
	require.NotNil(t, lines[0].StructureName)
	assert.Equal(t, "Exchange rates", *lines[0].StructureName)
	assert.Equal(t, "Replace", string(lines[0].Action))
	assert.Equal(t, "A", lines[0].Components["FREQ"])
	assert.Equal(t, "2020-Q1", lines[0].Components["TIME_PERIOD"])
	assert.Equal(t, "Information", string(lines[1].Action))
}

func TestCSV_AcceptHeader(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "obs.csv", observations)

	out, _, _ := run(t, "csv", "--accept", "application/vnd.sdmx.data+csv;version=2.0.0;timeFormat=normalized", path)
	lines := decodeLines(t, out)
	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].StructureName)
	assert.Equal(t, "2020-01-01T00:00:00/P3M", lines[0].Components["TIME_PERIOD"])
}

func TestCSV_BadAccept(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "obs.csv", observations)

	_, errOut, err := run(t, "csv", "--accept", "text/csv;labels=short", path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, errOut, "/labels [invalid_enum]")
}

func TestCSV_Components(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "obs.csv", observations)

	out, _, _ := run(t, "csv", "--components", "FREQ,TIME_PERIOD", path)
	lines := decodeLines(t, out)
	require.NotEmpty(t, lines)
	assert.Len(t, lines[0].Components, 2)
	assert.Equal(t, map[string]string{"OBS_VALUE": "1.25"}, lines[0].Others)
}

func TestCSV_DelimiterFromConfig(t *testing.T) {
	dir := workdir(t)
	writeFile(t, dir, "sdmx.yaml", "csv:\n  delimiter: \";\"\n")
	path := writeFile(t, dir, "obs.csv", strings.ReplaceAll(observations, ",", ";"))

	out, _, _ := run(t, "csv", path)
	assert.Len(t, decodeLines(t, out), 2)
}

func TestCSV_Metadata(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "ref.csv", referenceTable)

	out, _, err := run(t, "csv", "--metadata", path)
	require.NoError(t, err)
	lines := decodeLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, "metadataflow", lines[0].Structure)
	assert.Equal(t, "SET1", lines[0].MetadataSetID)
	assert.Equal(t, "Append", string(lines[0].Action))
	assert.Equal(t, []string{"Dataflow", "Dataflow"}, lines[0].TargetTypes)
	assert.Equal(t, []string{"ECB:EXR(1.0)", "ECB:ICP(1.0)"}, lines[0].TargetIDs)
	assert.Equal(t, "Jane", lines[0].Components["CONTACT"])
}

func TestCSV_HeaderMismatch(t *testing.T) {
	dir := workdir(t)
	path := writeFile(t, dir, "obs.csv", observations)

	_, errOut, err := run(t, "csv", "--metadata", path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, errOut, "[required]")
}

func TestCheck_DuplicateKeyWarning(t *testing.T) {
	dir := workdir(t)
	writeFile(t, dir, "sdmx.yaml", "parse:\n  duplicate_keys: warn\n")
	dup := strings.Replace(codelistMsg, `"id":"I",`, `"id":"I","id":"I",`, 1)
	path := writeFile(t, dir, "dup.json", dup)

	out, errOut, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok ")
	assert.Contains(t, errOut, "warning /meta/id [duplicate_key]")
}

func TestCheck_DuplicateKeyError(t *testing.T) {
	dir := workdir(t)
	dup := strings.Replace(codelistMsg, `"id":"I",`, `"id":"I","id":"I",`, 1)
	path := writeFile(t, dir, "dup.json", dup)

	_, errOut, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "error /meta/id [duplicate_key]")
}
