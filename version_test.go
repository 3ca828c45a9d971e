package affinity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	// In this module's own test binary the module is the main module,
	// not a dependency, so Version reports empty strings rather than
	// panicking or guessing.
	version, sum := Version()
	assert.Empty(t, version)
	assert.Empty(t, sum)
}
