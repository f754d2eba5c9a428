package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// contract is the API document embedded in the generated server. Requests it describes
// are validated against it and /swagger serves it.
type contract struct {
	doc    *openapi3.T
	router routers.Router
	json   []byte
}

func loadContract(ctx context.Context) (*contract, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render openapi document: %w", err)
	}

	return &contract{doc: doc, router: router, json: raw}, nil
}

// validate rejects requests whose parameters or body do not match the document. Routes
// the document does not describe pass through untouched.
func (c *contract) validate(onError func(echo.Context, error) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			req := ec.Request()
			route, pathParams, err := c.router.FindRoute(req)
			if err != nil {
				return next(ec)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return onError(ec, errs.NewValueIsInvalidErrorWithCause("request", err))
			}
			return next(ec)
		}
	}
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string { return string(d) }

var registerDocOnce sync.Once

// register publishes the document to swag so that echo-swagger can serve it. swag keeps a
// process-wide registry, so only the first server registers.
func (c *contract) register() {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(c.json))
	})
}

func (c *contract) serveJSON(ec echo.Context) error {
	return ec.Blob(http.StatusOK, echo.MIMEApplicationJSON, c.json)
}
