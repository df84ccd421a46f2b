package elicitation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseWeights decodes a YAML weights document and constructs the vector
// through the same validation path as NewPSRWeights. The expected shape is:
//
//	values: [1.0, 0.5, 0.0]
//
// ParseWeights operates on bytes already in memory; reading the document
// from a file or network is the caller's concern.
func ParseWeights(data []byte) (PSRWeights, error) {
	var spec weightsSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return PSRWeights{}, fmt.Errorf("failed to parse weights document: %w", err)
	}
	return NewPSRWeights(spec.Values)
}
