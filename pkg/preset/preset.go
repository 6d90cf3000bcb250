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

// Package preset holds the built-in rebranding jobs for the Retro Music to
// HOA Music migration. Table order is significant and must not be sorted.
package preset

import (
	"sort"
	"strings"

	"github.com/walteh/retree/pkg/filter"
	"github.com/walteh/retree/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📦 Preset is a named job: a replacement table plus the files it targets
type Preset struct {
	Name        string
	Description string
	Table       text.Table
	Extensions  filter.Extensions
	SkipDirs    []string
}

// Filter builds the traversal filter for the preset
func (p Preset) Filter() *filter.Filter {
	return &filter.Filter{
		Skip:       filter.NewSkipSet(p.SkipDirs...),
		Extensions: p.Extensions,
	}
}

var sourceExtensions = filter.Extensions{".java", ".kt"}

var presets = []Preset{
	{
		Name:        "fix-deprecations",
		Description: "rename the ExoPlayer wrapper and fix deprecated platform calls",
		Extensions:  sourceExtensions,
		SkipDirs:    []string{"build"},
		Table: text.Table{
			// ExoPlayer class name and usage
			{Old: "class hoaExoPlayer", New: "class HoaExoPlayer"},
			{Old: "hoaExoPlayer", New: "HoaExoPlayer"},
			{Old: "RetroExoPlayer", New: "HoaExoPlayer"},

			// DefaultAudioSink.Builder() without a context is deprecated
			{Old: "DefaultAudioSink.Builder()", New: "DefaultAudioSink.Builder(context)"},

			// Activity.parent in MusicPlayerRemote
			{Old: "val realActivity = (context as Activity).parent ?: context", New: "val realActivity = context"},

			// window.navigationBarColor in AbsSlidingMusicPanelActivity
			{Old: ".ofArgb(window.navigationBarColor, color)", New: ".ofArgb(navigationBarColor, color)"},
		},
	},
	{
		Name:        "fix-final-casings",
		Description: "restore Retrofit casing and finish Hoa class renames",
		Extensions:  sourceExtensions,
		SkipDirs:    []string{"build"},
		Table: text.Table{
			{Old: "import retrofit2.retrofit", New: "import retrofit2.Retrofit"},
			{Old: ": retrofit", New: ": Retrofit"},
			{Old: "p2: retrofit", New: "p2: Retrofit"},
			{Old: "p3: retrofit", New: "p3: Retrofit"},
			{Old: "retrofit.Builder", New: "Retrofit.Builder"},
			{Old: "provideLastFmretrofit", New: "provideLastFmRetrofit"},

			{Old: "hoaDatabase", New: "HoaDatabase"},
			{Old: "hoaWebServer", New: "HoaWebServer"},
			{Old: "hoaSessionManagerListener", New: "HoaSessionManagerListener"},
			{Old: "RetroDatabase", New: "HoaDatabase"},
			{Old: "RetroWebServer", New: "HoaWebServer"},
			{Old: "RetroSessionManagerListener", New: "HoaSessionManagerListener"},

			// view ids
			{Old: "cardhoaInfo", New: "cardHoaInfo"},
		},
	},
	{
		Name:        "fix-hoa-naming",
		Description: "capitalize the Glide helper classes",
		Extensions:  sourceExtensions,
		SkipDirs:    []string{"build"},
		Table: text.Table{
			{Old: "hoaMusicColoredTarget", New: "HoaMusicColoredTarget"},
			{Old: "hoaMusicGlideModule", New: "HoaMusicGlideModule"},
		},
	},
	{
		Name:        "refactor-hoa-full",
		Description: "rebrand classes, attributes, themes and UI strings across sources and resources",
		Extensions:  filter.Extensions{".java", ".kt", ".xml", ".gradle", ".kts", ".pro", ".html"},
		SkipDirs:    []string{".git", ".gradle", "build", ".idea", "gradle"},
		Table: text.Table{
			// classes and files
			{Old: "RetroShapeableImageView", New: "HoaShapeableImageView"},
			{Old: "RetroUtil", New: "HoaUtil"},
			{Old: "RetroColorUtil", New: "HoaColorUtil"},
			{Old: "RetroGlideExtension", New: "HoaGlideExtension"},

			// attributes
			{Old: "retroCornerSize", New: "hoaCornerSize"},

			// themes, from XML and code
			{Old: "Theme.RetroMusic", New: "Theme.HOAMusic"},
			{Old: "Theme_RetroMusic", New: "Theme_HOAMusic"},

			// UI strings
			{Old: "Retro Music", New: "HOA Music"},
			{Old: "Retro music", New: "HOA Music"},
			{Old: "retro music", New: "HOA Music"},
		},
	},
}

// All returns every preset sorted by name
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the preset names sorted
func Names() []string {
	names := make([]string, 0, len(presets))
	for _, p := range All() {
		names = append(names, p.Name)
	}
	return names
}

// 🔍 Lookup finds a preset by name
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.Errorf("unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
}
