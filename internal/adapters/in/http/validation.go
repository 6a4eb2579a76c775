package http

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks parameters and bodies against the OpenAPI document
// before the handler runs. Routes the document does not describe pass through.
// Authentication is resolved by ActorMiddleware, so security requirements are
// not evaluated here.
func RequestValidator(swagger *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			route, ok := findRoute(swagger, ctx)
			if !ok {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    ctx.Request(),
				PathParams: pathParams(ctx),
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(ctx.Request().Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(ctx)
		}
	}
}

func findRoute(swagger *openapi3.T, ctx echo.Context) (*routers.Route, bool) {
	path := openAPIPath(ctx.Path())
	item := swagger.Paths.Value(path)
	if item == nil {
		return nil, false
	}
	method := ctx.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, false
	}
	return &routers.Route{
		Spec:      swagger,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, true
}

// openAPIPath turns an echo route such as /orders/:orderId into /orders/{orderId}.
func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, s := range segments {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

func pathParams(ctx echo.Context) map[string]string {
	names := ctx.ParamNames()
	values := ctx.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}

func validationMessage(err error) string {
	switch e := err.(type) {
	case *openapi3filter.RequestError:
		if e.Parameter != nil {
			return "invalid parameter " + e.Parameter.Name + ": " + reasonOf(e)
		}
		if e.RequestBody != nil {
			return "invalid request body: " + reasonOf(e)
		}
		return e.Error()
	default:
		return err.Error()
	}
}

func reasonOf(e *openapi3filter.RequestError) string {
	if e.Err != nil {
		if schemaErr, ok := e.Err.(*openapi3.SchemaError); ok {
			return schemaErr.Reason
		}
		return e.Err.Error()
	}
	return e.Reason
}
