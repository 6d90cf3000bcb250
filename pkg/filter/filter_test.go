package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipSet_Prune(t *testing.T) {
	tests := []struct {
		name    string
		skip    SkipSet
		subdirs []string
		want    []string
	}{
		{
			name:    "drops_build",
			skip:    NewSkipSet("build"),
			subdirs: []string{"app", "build", "src"},
			want:    []string{"app", "src"},
		},
		{
			name:    "keeps_order",
			skip:    NewSkipSet(".git", ".gradle", "build", ".idea", "gradle"),
			subdirs: []string{"z", ".idea", "a", "gradle", "m", ".git"},
			want:    []string{"z", "a", "m"},
		},
		{
			name:    "exact_names_only",
			skip:    NewSkipSet("build"),
			subdirs: []string{"builds", "prebuild", "Build"},
			want:    []string{"builds", "prebuild", "Build"},
		},
		{
			name:    "empty_set",
			skip:    NewSkipSet(),
			subdirs: []string{"build"},
			want:    []string{"build"},
		},
		{
			name:    "no_subdirs",
			skip:    NewSkipSet("build"),
			subdirs: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.subdirs...)
			assert.Equal(t, tt.want, tt.skip.Prune(".", in))
			assert.Equal(t, tt.subdirs, in, "input should not be mutated")
		})
	}
}

func TestExtensions_Match(t *testing.T) {
	exts := Extensions{".java", ".kt", ".xml", ".gradle", ".kts", ".pro", ".html"}

	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "kotlin", file: "Main.kt", want: true},
		{name: "java", file: "Util.java", want: true},
		{name: "gradle", file: "build.gradle", want: true},
		{name: "double_suffix", file: "settings.gradle.kts", want: true},
		{name: "proguard", file: "proguard-rules.pro", want: true},
		{name: "bare_suffix_name", file: ".kt", want: true},
		{name: "case_sensitive", file: "Main.KT", want: false},
		{name: "json", file: "strings.json", want: false},
		{name: "suffix_must_end_name", file: "Main.kt.bak", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exts.Match(tt.file))
		})
	}
}

func TestIgnore(t *testing.T) {
	ig := Ignore{"**/generated/**", "docs/*.html"}
	require.NoError(t, ig.Validate())

	assert.True(t, ig.Match("app/build/generated/R.java"))
	assert.True(t, ig.Match("docs/index.html"))
	assert.False(t, ig.Match("docs/nested/index.html"))
	assert.False(t, ig.Match("app/src/Main.kt"))
	assert.False(t, Ignore(nil).Match("anything"))

	err := Ignore{"[unclosed"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}

func TestFilter_Accept(t *testing.T) {
	f := &Filter{
		Skip:       NewSkipSet("build"),
		Extensions: Extensions{".kt"},
		Ignore:     Ignore{"legacy/**"},
	}

	assert.True(t, f.Accept("app/Main.kt", "Main.kt"))
	assert.False(t, f.Accept("app/Main.java", "Main.java"), "suffix not allowed")
	assert.False(t, f.Accept("legacy/Old.kt", "Old.kt"), "ignored by glob")
	assert.Equal(t, []string{"app"}, f.Prune(".", []string{"app", "build"}))
}
