// Package api wraps the Teamly REST endpoints.
//
// By default a failed call is logged and answered with an empty result
// and a nil error: a pointer to a zero struct, an empty slice or an empty
// structs.Payload, never nil. Set Config.Strict to get the
// *rest.APIError or transport error back instead.
package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/DeadLyBro/teamly/src/rest"
	"github.com/DeadLyBro/teamly/src/structs"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type API struct {
	rest   *rest.Client
	log    *slog.Logger
	strict bool
}

type Config struct {
	REST   *rest.Client
	Logger *slog.Logger
	Strict bool
}

func New(cfg Config) *API {
	a := &API{
		rest:   cfg.REST,
		log:    cfg.Logger,
		strict: cfg.Strict,
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	if a.rest == nil {
		a.rest = rest.New(rest.Config{Logger: a.log})
	}
	return a
}

// REST returns the underlying transport.
func (a *API) REST() *rest.Client {
	return a.rest
}

// call sends a request and decodes the response value under key, or the
// whole body when key is empty. body may be nil, a rest.Multipart, or any
// JSON-encodable value.
func call[T any](ctx context.Context, a *API, method string, path string, body any, key string) (T, error) {
	zero := empty[T]()
	var reader io.Reader
	var options *rest.RESTOptions
	switch b := body.(type) {
	case nil:
	case rest.Multipart:
		r, contentType, err := b.Encode()
		if err != nil {
			return zero, a.fail(method, path, err)
		}
		reader = r
		options = &rest.RESTOptions{ContentType: contentType}
	default:
		r, err := rest.JSONBody(body)
		if err != nil {
			return zero, a.fail(method, path, err)
		}
		reader = r
	}

	res, err := a.rest.Do(ctx, method, path, reader, options)
	if err != nil {
		return zero, a.fail(method, path, err)
	}
	if err := res.Err(); err != nil {
		return zero, a.fail(method, path, err)
	}
	if res.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(res.Body)) == 0 {
		return zero, nil
	}

	var out T
	if key == "" {
		err = res.DecodeJSON(&out)
	} else {
		var envelope map[string]jsoniter.RawMessage
		if err = res.DecodeJSON(&envelope); err == nil {
			if raw, ok := envelope[key]; ok {
				err = json.Unmarshal(raw, &out)
			}
		}
	}
	if err != nil {
		return zero, a.fail(method, path, err)
	}
	if v := reflect.ValueOf(&out).Elem(); isNilable(v.Kind()) && v.IsNil() {
		return zero, nil
	}
	return out, nil
}

// empty returns the value handed out in place of a missing result: a
// pointer to a zero value, an empty slice or an empty map.
func empty[T any]() T {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface().(T)
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface().(T)
	case reflect.Map:
		return reflect.MakeMap(t).Interface().(T)
	}
	return zero
}

func isNilable(k reflect.Kind) bool {
	return k == reflect.Pointer || k == reflect.Slice || k == reflect.Map
}

// callPayload is call for endpoints whose answer has no fixed shape.
func callPayload(ctx context.Context, a *API, method string, path string, body any) (structs.Payload, error) {
	return call[structs.Payload](ctx, a, method, path, body, "")
}

// callNoContent is call for endpoints whose answer is ignored.
func callNoContent(ctx context.Context, a *API, method string, path string, body any) error {
	_, err := call[structs.Payload](ctx, a, method, path, body, "")
	return err
}

func (a *API) fail(method, path string, err error) error {
	a.log.Error("API Error", "method", method, "path", path, "error", err)
	if a.strict {
		return err
	}
	return nil
}
