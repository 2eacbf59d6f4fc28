package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoverse/alice/internal/prover"
	"github.com/gnoverse/alice/suite"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRulesGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRules(&buf, nil))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "rules", buf.Bytes())
}

func TestPrintRules_ByName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRules(&buf, []string{"cleanup"}))
	assert.Equal(t, "cleanup: And[] ↝ True,  SepConj[] ↝ Emp\n", buf.String())

	assert.EqualError(t, printRules(&buf, []string{"cut"}), `unknown rule "cut"`)
}

func TestRunProve(t *testing.T) {
	p := prover.New()
	tests := []struct {
		name     string
		inputs   []string
		code     int
		contains []string
		excludes []string
	}{
		{
			name:     "valid",
			inputs:   []string{"And[Neq(x,y)]|SepConj[x->y,y->Nil] |- True|SepConj[ls(x,Nil)]"},
			contains: []string{"valid: argument 1"},
		},
		{
			name: "one invalid",
			inputs: []string{
				"True|Emp |- True|Emp",
				"True|SepConj[x->Nil,y->Nil] |- And[Eq(x,y)]|SepConj[y->Nil]",
			},
			code:     1,
			contains: []string{"valid: argument 1", "invalid: argument 2", "= entailment is invalid"},
		},
		{
			name:     "parse error stops before proving",
			inputs:   []string{"True|Emp |- True|Emp", "True|Heap |- True|Emp"},
			code:     2,
			contains: []string{"error: argument 2", "^ expected 'Emp' or 'SepConj'"},
			excludes: []string{"valid: argument 1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runProve(context.Background(), &buf, p, tt.inputs)
			assert.Equal(t, tt.code, ExitCode(err))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("# header\n\nTrue|Emp |- True|Emp\n  True|Emp|-True|Emp  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"True|Emp |- True|Emp", "True|Emp|-True|Emp"}, lines)

	_, err = readLines(strings.NewReader("\n# nothing\n"))
	assert.Error(t, err)
}

func TestRunCheck(t *testing.T) {
	opts := checkOptions{maxDepth: 100, workers: 2}

	t.Run("pass", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCheck(context.Background(), &buf, []string{"testdata/suites/pass.yaml"}, opts)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "valid: pass/two-cell list")
		assert.Contains(t, buf.String(), "invalid: pass/aliasing")
		assert.True(t, strings.HasSuffix(buf.String(), "2 passed, 0 failed\n"))
	})

	t.Run("fail", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCheck(context.Background(), &buf, []string{"testdata/suites"}, opts)
		assert.Equal(t, 1, ExitCode(err))
		assert.Contains(t, buf.String(), "= expected valid")
		assert.True(t, strings.HasSuffix(buf.String(), "2 passed, 1 failed\n"))
	})

	t.Run("json file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "report.json")
		jsonOpts := opts
		jsonOpts.json = true
		jsonOpts.output = out

		var buf bytes.Buffer
		require.NoError(t, runCheck(context.Background(), &buf, []string{"testdata/suites/pass.yaml"}, jsonOpts))
		assert.Empty(t, buf.String())

		d, err := os.ReadFile(out)
		require.NoError(t, err)
		var report struct {
			Passed int `json:"passed"`
			Cases  []struct {
				Name    string `json:"name"`
				Verdict string `json:"verdict"`
			} `json:"cases"`
		}
		require.NoError(t, json.Unmarshal(d, &report))
		assert.Equal(t, 2, report.Passed)
		assert.Equal(t, "invalid", report.Cases[1].Verdict)
	})

	t.Run("cache", func(t *testing.T) {
		cacheOpts := opts
		cacheOpts.cacheDir = filepath.Join(t.TempDir(), "cache")
		for i := 0; i < 2; i++ {
			var buf bytes.Buffer
			require.NoError(t, runCheck(context.Background(), &buf, []string{"testdata/suites/pass.yaml"}, cacheOpts))
		}
		assert.FileExists(t, filepath.Join(cacheOpts.cacheDir, "verdicts.gob"))
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCheck(context.Background(), &buf, []string{"testdata/suites/absent.yaml"}, opts)
		assert.Equal(t, 2, ExitCode(err))
	})
}

func TestInitConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), suite.DefaultConfigFile)
	require.NoError(t, initConfigurationFile(path, false))

	config, err := suite.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, suite.DefaultConfig(), config)

	assert.ErrorContains(t, initConfigurationFile(path, false), "already exists")
	assert.NoError(t, initConfigurationFile(path, true))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errNotValid))
	assert.Equal(t, 2, ExitCode(assert.AnError))
}

func TestExecute(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.yaml")
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"rules", []string{"-c", absent, "rules"}, 0},
		{"bare entailment", []string{"-c", absent, "True|Emp |- True|Emp"}, 0},
		{"prove invalid", []string{"-c", absent, "prove", "True|SepConj[x->Nil] |- True|Emp"}, 1},
		{"check requires a path", []string{"-c", absent, "check"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetErr(&buf)
			rootCmd.SetArgs(tt.args)
			assert.Equal(t, tt.code, ExitCode(Execute()), buf.String())
		})
	}
}
