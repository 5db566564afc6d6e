package userctx

import (
	"context"

	"github.com/blogem/config-store/models"
)

// Context key type
type contextKey string

const callerKey contextKey = "caller"
const clientKey contextKey = "client"

// Client is the network context of a request
type Client struct {
	IP    string
	Agent string
}

// SetCaller adds the caller identity to request context
func SetCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCaller retrieves the caller identity from request context.
// Client fields left empty on the caller are filled from the request's client context.
func GetCaller(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(models.Caller)
	if !ok {
		return models.Caller{}, false
	}

	client := GetClient(ctx)
	if caller.ClientIP == "" {
		caller.ClientIP = client.IP
	}
	if caller.ClientAgent == "" {
		caller.ClientAgent = client.Agent
	}
	return caller, true
}

// SetClient adds client network context to request context
func SetClient(ctx context.Context, client Client) context.Context {
	return context.WithValue(ctx, clientKey, client)
}

// GetClient retrieves client network context; missing values are empty
func GetClient(ctx context.Context) Client {
	client, _ := ctx.Value(clientKey).(Client)
	return client
}
