package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, b string) { Version, Commit, BuildTime = v, c, b }(Version, Commit, BuildTime)

	Version, Commit, BuildTime = "v1.2.3", "abc123", "2025-01-02"
	assert.Equal(t, "v1.2.3", GetVersion())
	assert.Equal(t, "v1.2.3 (abc123) built at 2025-01-02", GetFullVersion())
}

func TestGetVersion_Dev(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}
