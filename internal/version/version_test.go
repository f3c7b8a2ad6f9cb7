package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion_LinkTime(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.4.0"
	assert.Equal(t, "v1.4.0", GetVersion())
	assert.True(t, IsRelease())
	assert.Equal(t, "v1.4.0", GetBuildInfo().GitTag)

	Version = ""
	assert.NotEmpty(t, GetVersion())
}

func TestGetJSONVersion(t *testing.T) {
	var info BuildInfo
	require.NoError(t, json.Unmarshal([]byte(GetJSONVersion()), &info))
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
