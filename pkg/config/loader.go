package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a job from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .toml for TOML
func LoadConfig(ctx context.Context, path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var job *Job

	switch ext {
	case ".json":
		job, err = loadJSON(data)
	case ".yaml", ".yml":
		job, err = loadYAML(data)
	case ".hcl":
		job, err = loadHCL(data, path)
	case ".toml":
		job, err = loadTOML(data)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}

	if err != nil {
		return nil, err
	}
	job.location = path
	if err := Validate(ctx, job); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return job, nil
}

// loadJSON loads a job from JSON data
func loadJSON(data []byte) (*Job, error) {
	var job Job
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&job); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &job, nil
}

// loadYAML loads a job from YAML data
func loadYAML(data []byte) (*Job, error) {
	var job Job
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&job); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &job, nil
}

// loadHCL loads a job from HCL data. Replacements are repeated blocks:
//
//	replacement {
//	  old = "RetroUtil"
//	  new = "HoaUtil"
//	}
func loadHCL(data []byte, filename string) (*Job, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var job Job
	diags = gohcl.DecodeBody(hclFile.Body, ctx, &job)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &job, nil
}

// loadTOML loads a job from TOML data. Keys the job does not know are errors,
// matching the other formats.
func loadTOML(data []byte) (*Job, error) {
	var job Job
	md, err := toml.Decode(string(data), &job)
	if err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("parsing TOML: unknown keys %s", strings.Join(keys, ", "))
	}
	return &job, nil
}
