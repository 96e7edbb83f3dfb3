package converter

import (
	"net/url"

	"github.com/apibridge/swag2postman/pmerrors"
	"github.com/apibridge/swag2postman/postman"
	"github.com/apibridge/swag2postman/spec"
)

// baseURLKey is the single variable every generated environment carries.
const baseURLKey = "base_url"

// buildEnvironment generates an environment for one server entry: named
// after the server URL's host, with base_url holding the full URL,
// enabled. Pure function of the server URL apart from the generated id.
func (c *Converter) buildEnvironment(server *spec.Server) (*postman.Environment, error) {
	u, err := url.Parse(server.URL)
	if err != nil {
		return nil, &pmerrors.ParseError{Path: server.URL, Message: "invalid server URL", Cause: err}
	}
	if u.Host == "" {
		return nil, &pmerrors.ParseError{Path: server.URL, Message: "server URL has no host"}
	}

	return &postman.Environment{
		ID:   c.ids()(),
		Name: u.Host,
		Values: []postman.EnvironmentValue{
			{Key: baseURLKey, Value: server.URL, Enabled: true, Type: "default"},
		},
		Scope: postman.EnvironmentScope,
	}, nil
}
