package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apibridge/swag2postman/pmerrors"
	"github.com/apibridge/swag2postman/postman"
	"github.com/apibridge/swag2postman/spec"
)

func TestBuildEnvironment(t *testing.T) {
	env, err := testConverter().buildEnvironment(&spec.Server{URL: "https://api.example.com"})
	require.NoError(t, err)

	assert.Equal(t, "api.example.com", env.Name)
	assert.Equal(t, "fixed-id", env.ID)
	assert.Equal(t, postman.EnvironmentScope, env.Scope)
	require.Len(t, env.Values, 1)
	assert.Equal(t, "base_url", env.Values[0].Key)
	assert.Equal(t, "https://api.example.com", env.Values[0].Value)
	assert.True(t, env.Values[0].Enabled)
}

func TestBuildEnvironmentKeepsPort(t *testing.T) {
	env, err := testConverter().buildEnvironment(&spec.Server{URL: "http://localhost:8080/v1"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", env.Name)
	assert.Equal(t, "http://localhost:8080/v1", env.Values[0].Value)
}

func TestBuildEnvironmentNoHost(t *testing.T) {
	_, err := testConverter().buildEnvironment(&spec.Server{URL: "/relative/path"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pmerrors.ErrParse))
	assert.Contains(t, err.Error(), "no host")
}

func TestBuildEnvironmentInvalidURL(t *testing.T) {
	_, err := testConverter().buildEnvironment(&spec.Server{URL: "://bad"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pmerrors.ErrParse))
}
