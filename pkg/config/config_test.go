// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retree/pkg/preset"
	"github.com/walteh/retree/pkg/text"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing config file")
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		errContains string
		check       func(t *testing.T, job *Job)
	}{
		{
			name: "yaml",
			file: "retree.yaml",
			config: `
extensions: [".kt", ".java"]
skip_dirs: [build]
ignore: ["**/generated/**"]
replacements:
  - old: RetroUtil
    new: HoaUtil
  - old: HoaUtil
    new: HoaUtils
`,
			check: func(t *testing.T, job *Job) {
				assert.Equal(t, []string{".kt", ".java"}, job.Extensions, "extensions should match")
				assert.Equal(t, []string{"build"}, job.SkipDirs, "skip dirs should match")
				assert.Equal(t, []string{"**/generated/**"}, job.Ignore, "ignore should match")
				assert.Equal(t, []text.Rule{
					{Old: "RetroUtil", New: "HoaUtil"},
					{Old: "HoaUtil", New: "HoaUtils"},
				}, job.Replacements, "replacements should keep file order")
			},
		},
		{
			name:   "yml_with_preset_only",
			file:   "retree.yml",
			config: "preset: fix-hoa-naming\n",
			check: func(t *testing.T, job *Job) {
				assert.Equal(t, "fix-hoa-naming", job.Preset, "preset should match")
				assert.Empty(t, job.Replacements, "no extra replacements")
			},
		},
		{
			name: "json",
			file: "retree.json",
			config: `{
  "extensions": [".xml"],
  "replacements": [{"old": "Theme.RetroMusic", "new": "Theme.HOAMusic"}]
}`,
			check: func(t *testing.T, job *Job) {
				assert.Equal(t, []string{".xml"}, job.Extensions, "extensions should match")
				require.Len(t, job.Replacements, 1, "should have 1 replacement")
				assert.Equal(t, "Theme.HOAMusic", job.Replacements[0].New, "new should match")
			},
		},
		{
			name: "hcl",
			file: "retree.hcl",
			config: `
preset     = "refactor-hoa-full"
extensions = [".kt"]

replacement {
  old = "RetroBottomSheet"
  new = "HoaBottomSheet"
}

replacement {
  old = "retro_"
  new = "hoa_"
}
`,
			check: func(t *testing.T, job *Job) {
				assert.Equal(t, "refactor-hoa-full", job.Preset, "preset should match")
				assert.Equal(t, []string{".kt"}, job.Extensions, "extensions should match")
				assert.Equal(t, []text.Rule{
					{Old: "RetroBottomSheet", New: "HoaBottomSheet"},
					{Old: "retro_", New: "hoa_"},
				}, job.Replacements, "blocks should keep file order")
			},
		},
		{
			name: "toml",
			file: "retree.toml",
			config: `
extensions = [".java"]
skip_dirs = ["build", ".gradle"]

[[replacements]]
old = "RetroWebServer"
new = "HoaWebServer"
`,
			check: func(t *testing.T, job *Job) {
				assert.Equal(t, []string{"build", ".gradle"}, job.SkipDirs, "skip dirs should match")
				require.Len(t, job.Replacements, 1, "should have 1 replacement")
				assert.Equal(t, "RetroWebServer", job.Replacements[0].Old, "old should match")
			},
		},
		{
			name:        "unsupported_extension",
			file:        "retree.ini",
			config:      "a=b",
			errContains: `unsupported file extension ".ini"`,
		},
		{
			name:        "yaml_unknown_field",
			file:        "retree.yaml",
			config:      "extensions: [.kt]\nreplacments: []\n",
			errContains: "parsing YAML",
		},
		{
			name:        "json_unknown_field",
			file:        "retree.json",
			config:      `{"extensions": [".kt"], "destination": "/tmp"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "hcl_unknown_attribute",
			file:        "retree.hcl",
			config:      "extensions = [\".kt\"]\nasync = true\n",
			errContains: "decoding HCL",
		},
		{
			name:        "hcl_syntax_error",
			file:        "retree.hcl",
			config:      "extensions = [\n",
			errContains: "parsing HCL",
		},
		{
			name:        "toml_unknown_key",
			file:        "retree.toml",
			config:      "extensions = [\".kt\"]\nasync = true\n",
			errContains: "unknown keys async",
		},
		{
			name:        "no_replacements",
			file:        "retree.yaml",
			config:      "extensions: [.kt]\n",
			errContains: "at least one replacement is required",
		},
		{
			name:        "no_extensions",
			file:        "retree.yaml",
			config:      "replacements:\n  - old: a\n    new: b\n",
			errContains: "at least one extension is required",
		},
		{
			name:        "empty_old",
			file:        "retree.yaml",
			config:      "extensions: [.kt]\nreplacements:\n  - old: \"\"\n    new: b\n",
			errContains: "rule 0: old is required",
		},
		{
			name:        "unknown_preset",
			file:        "retree.yaml",
			config:      "preset: fix-everything\n",
			errContains: `unknown preset "fix-everything"`,
		},
		{
			name:        "bad_ignore_glob",
			file:        "retree.yaml",
			config:      "extensions: [.kt]\nignore: [\"[\"]\nreplacements:\n  - old: a\n    new: b\n",
			errContains: "invalid ignore pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.config)

			job, err := LoadConfig(testContext(t), path)
			if tt.errContains != "" {
				require.Error(t, err, "expected error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "loading config")
			assert.Equal(t, path, job.location, "location should be recorded")
			if tt.check != nil {
				tt.check(t, job)
			}
		})
	}
}

func TestPackageDoc(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "doc.go", nil, parser.ParseComments)
	require.NoError(t, err, "doc.go should parse")
	require.NotNil(t, f.Doc, "package doc should be attached")

	doc := f.Doc.Text()
	assert.Contains(t, doc, `- "**/generated/**"`, "glob example should survive in the doc")
	assert.Contains(t, doc, "plan, err := job.Resolve()", "doc should run to the end of the example")
}

func TestLoadConfig_DocumentedExample(t *testing.T) {
	path := writeConfig(t, "retree.yaml", `
preset: refactor-hoa-full
ignore:
  - "**/generated/**"
replacements:
  - old: RetroBottomSheet
    new: HoaBottomSheet
`)

	job, err := LoadConfig(testContext(t), path)
	require.NoError(t, err)

	plan, err := job.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "retree", plan.Name)
	assert.Equal(t, "HoaBottomSheet", plan.Table[len(plan.Table)-1].New)
	assert.False(t, plan.Filter.Accept("app/generated/R.kt", "R.kt"))
	assert.True(t, plan.Filter.Accept("app/Main.kt", "Main.kt"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(testContext(t), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	full, err := preset.Lookup("refactor-hoa-full")
	require.NoError(t, err)

	t.Run("preset_rules_run_first", func(t *testing.T) {
		job := &Job{
			Preset:       "refactor-hoa-full",
			Replacements: []text.Rule{{Old: "HoaUtil", New: "HoaUtils"}},
		}

		plan, err := job.Resolve()
		require.NoError(t, err)

		require.Len(t, plan.Table, len(full.Table)+1)
		assert.Equal(t, full.Table, plan.Table[:len(full.Table)], "preset rules keep their order")
		assert.Equal(t, text.Rule{Old: "HoaUtil", New: "HoaUtils"}, plan.Table[len(full.Table)])
		assert.Equal(t, "HoaUtils", plan.Table.Apply("RetroUtil").Modified, "file rules see preset output")
	})

	t.Run("preset_filter_is_inherited", func(t *testing.T) {
		plan, err := (&Job{Preset: "refactor-hoa-full"}).Resolve()
		require.NoError(t, err)

		assert.Equal(t, full.Filter().Extensions, plan.Filter.Extensions)
		assert.Equal(t, full.Filter().Skip, plan.Filter.Skip)
		assert.Equal(t, []string{"app"}, plan.Filter.Prune(".", []string{".git", ".idea", "app", "gradle"}))
		assert.Equal(t, "refactor-hoa-full", plan.Name)
	})

	t.Run("file_filter_overrides_preset", func(t *testing.T) {
		job := &Job{
			Preset:     "refactor-hoa-full",
			Extensions: []string{".md"},
			SkipDirs:   []string{"docs"},
			Ignore:     []string{"**/CHANGELOG.md"},
		}

		plan, err := job.Resolve()
		require.NoError(t, err)

		assert.True(t, plan.Filter.Accept("README.md", "README.md"))
		assert.False(t, plan.Filter.Accept("Main.kt", "Main.kt"), "preset extensions are replaced")
		assert.False(t, plan.Filter.Accept("a/CHANGELOG.md", "CHANGELOG.md"), "ignored by glob")
		assert.Equal(t, []string{".git"}, plan.Filter.Prune(".", []string{".git", "docs"}))
	})
}
