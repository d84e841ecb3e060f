package otel_test

import (
	"context"
	"errors"
	"hostel/config"
	"hostel/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hostel-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Test")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"store.key": "hostel_rooms",
		"count":     3,
		"ok":        true,
		"tags":      []string{"a"},
		"other":     1.5,
	})
	scope.AddEvent("loaded")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
