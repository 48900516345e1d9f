package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	// Valid spec, including a dependency on an undeclared step
	{
		p := PipelineSpec{
			Name: "release",
			Steps: []StepSpec{
				{Name: "build", Command: "make build"},
				{Name: "publish", DependsOn: []string{"build", "sign"}},
			},
		}
		require.NoError(t, p.Validate())
	}

	// Missing pipeline name
	{
		p := PipelineSpec{Steps: []StepSpec{{Name: "build"}}}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	}

	// Missing step name
	{
		p := PipelineSpec{Name: "release", Steps: []StepSpec{{Command: "make"}}}
		require.Error(t, p.Validate())
	}

	// Duplicate step name
	{
		p := PipelineSpec{
			Name:  "release",
			Steps: []StepSpec{{Name: "build"}, {Name: "build"}},
		}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate step name build")
	}
}
