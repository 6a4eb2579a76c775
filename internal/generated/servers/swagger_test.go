package servers_test

import (
	"reflect"
	"strings"
	"testing"

	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unimplementedServer struct {
	servers.ServerInterface
}

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.NotEmpty(t, swagger.Paths.Map())
	assert.Equal(t, "3.0.3", swagger.OpenAPI)
}

func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	var documented []string
	for path, item := range swagger.Paths.Map() {
		echoPath := strings.NewReplacer("{", ":", "}", "").Replace(path)
		for method := range item.Operations() {
			documented = append(documented, method+" "+echoPath)
		}
	}

	e := echo.New()
	servers.RegisterHandlers(e, unimplementedServer{})
	var registered []string
	for _, r := range e.Routes() {
		registered = append(registered, r.Method+" "+r.Path)
	}

	assert.ElementsMatch(t, documented, registered)
}

func TestServerInterface_CoversEveryOperation(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	iface := reflect.TypeOf((*servers.ServerInterface)(nil)).Elem()

	operations := 0
	for path, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			operations++
			_, ok := iface.MethodByName(op.OperationID)
			assert.True(t, ok, "%s %s: ServerInterface has no method %s", method, path, op.OperationID)
		}
	}
	assert.Equal(t, iface.NumMethod(), operations)
}
