package genlive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/veldtlabs/genlive/pkg/core/types"
	"github.com/veldtlabs/genlive/pkg/live"
)

// ToolHandler executes one function call. args is the call's argument
// object as JSON.
type ToolHandler func(ctx context.Context, args json.RawMessage) (any, error)

// ToolWithHandler pairs a function declaration with its implementation.
type ToolWithHandler struct {
	Declaration types.FunctionDeclaration
	Handler     ToolHandler
}

// MakeTool creates a ToolWithHandler from a typed function. The parameter
// schema is reflected from T.
//
// Example:
//
//	tool := genlive.MakeTool("get_weather", "Get weather for a city",
//	    func(ctx context.Context, input struct {
//	        City string `json:"city"`
//	    }) (string, error) {
//	        return weatherAPI.Get(input.City)
//	    },
//	)
func MakeTool[T any, R any](name, description string, fn func(context.Context, T) (R, error)) ToolWithHandler {
	var zero T
	decl := types.DeclareFunction(name, description, zero)

	handler := func(ctx context.Context, args json.RawMessage) (any, error) {
		var input T
		if len(args) > 0 {
			if err := json.Unmarshal(args, &input); err != nil {
				return nil, fmt.Errorf("parse %s arguments: %w", name, err)
			}
		}
		return fn(ctx, input)
	}

	return ToolWithHandler{Declaration: decl, Handler: handler}
}

// ToolSet is a collection of tools with their handlers.
type ToolSet struct {
	declarations []types.FunctionDeclaration
	handlers     map[string]ToolHandler
}

// NewToolSet creates a ToolSet from the given tools.
func NewToolSet(tools ...ToolWithHandler) *ToolSet {
	ts := &ToolSet{handlers: make(map[string]ToolHandler)}
	for _, tool := range tools {
		ts.declarations = append(ts.declarations, tool.Declaration)
		ts.handlers[tool.Declaration.Name] = tool.Handler
	}
	return ts
}

// Tools returns the declarations in request form, for Setup.Tools or
// GenerateRequest.Tools.
func (ts *ToolSet) Tools() []types.Tool {
	if len(ts.declarations) == 0 {
		return nil
	}
	return []types.Tool{{FunctionDeclarations: ts.declarations}}
}

// Execute runs every call in the event and returns one response per call.
// A failing or unknown handler produces an error-shaped response so the
// model can react; the joined errors are also returned.
func (ts *ToolSet) Execute(ctx context.Context, event live.ToolCallEvent) ([]types.FunctionResponse, error) {
	var errs []error
	responses := make([]types.FunctionResponse, 0, len(event.FunctionCalls))
	for _, call := range event.FunctionCalls {
		result, err := ts.executeCall(ctx, call)
		if err != nil {
			errs = append(errs, err)
			result = map[string]any{"error": err.Error()}
		}
		responses = append(responses, types.FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: types.FunctionResult{Result: result},
		})
	}
	return responses, errors.Join(errs...)
}

// Respond executes the event's calls and sends the results back on the
// session.
func (ts *ToolSet) Respond(ctx context.Context, session *live.Session, event live.ToolCallEvent) error {
	responses, execErr := ts.Execute(ctx, event)
	if len(responses) == 0 {
		return execErr
	}
	if err := session.SendToolResponse(responses...); err != nil {
		return err
	}
	return execErr
}

func (ts *ToolSet) executeCall(ctx context.Context, call types.FunctionCall) (any, error) {
	handler, ok := ts.handlers[call.Name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", call.Name)
	}
	args, err := json.Marshal(call.Args)
	if err != nil {
		return nil, fmt.Errorf("encode %s arguments: %w", call.Name, err)
	}
	return handler(ctx, args)
}
