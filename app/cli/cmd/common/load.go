package common

import (
	"encoding/json"
	"os"
	"path/filepath"

	"proteus/pkg/api"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadSpec reads a pipeline specification from the given file.
// The format is selected from the file extension, YAML or JSON.
func LoadSpec(path string) (api.PipelineSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return api.PipelineSpec{}, errors.Wrapf(err, "cannot open file %s", path)
	}
	defer f.Close()

	var spec api.PipelineSpec
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&spec); err != nil {
			return api.PipelineSpec{}, errors.Wrapf(err, "cannot decode file %s as pipeline specification", path)
		}
	default:
		if err := json.NewDecoder(f).Decode(&spec); err != nil {
			return api.PipelineSpec{}, errors.Wrapf(err, "cannot decode file %s as pipeline specification", path)
		}
	}
	return spec, nil
}
