// Package config loads rewrite jobs from a file.
//
//	            +-------------+
//	            |     Job     |
//	            |  (table,    |
//	            |   filter)   |
//	            +------+------+
//	                   |
//	  +--------+-------+-------+--------+
//	  |        |               |        |
//	+-+--+  +--+---+        +--+--+  +--+---+
//	|YAML|  | JSON |        | HCL |  | TOML |
//	+----+  +------+        +-----+  +------+
//
// 🎯 Purpose:
// - Describe a job without recompiling: replacements, suffixes, skipped
//   directory names and ignore globs
// - Extend a built-in preset with extra rules
//
// 🔄 Flow:
// 1. Pick the decoder from the file extension
// 2. Decode strictly, unknown keys are errors in every format
// 3. Merge with the named preset, if any
// 4. Validate the merged job
//
// ⚡ Merge Rules:
// - Replacements from the file run after the preset's rules
// - Non-empty extensions or skip_dirs replace the preset's values
// - Ignore globs only come from the file
//
// 🔍 Example:
//
//	# retree.yaml
//	preset: refactor-hoa-full
//	ignore:
//	  - "**/generated/**"
//	replacements:
//	  - old: RetroBottomSheet
//	    new: HoaBottomSheet
//
//	job, err := config.LoadConfig(ctx, "retree.yaml")
//	if err != nil {
//		return err
//	}
//	plan, err := job.Resolve()
package config
