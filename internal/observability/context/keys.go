package context

import "context"

type contextKey string

const (
	requestIDKey  contextKey = "observability_request_id"
	terminalIDKey contextKey = "observability_terminal_id"
	cashierKey    contextKey = "observability_cashier"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}

// WithTerminalID records the billing counter a request came from.
func WithTerminalID(ctx context.Context, terminalID string) context.Context {
	if ctx == nil || terminalID == "" {
		return ctx
	}
	return context.WithValue(ctx, terminalIDKey, terminalID)
}

func TerminalIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(terminalIDKey).(string)
	return value
}

func WithCashier(ctx context.Context, cashier string) context.Context {
	if ctx == nil || cashier == "" {
		return ctx
	}
	return context.WithValue(ctx, cashierKey, cashier)
}

func CashierFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(cashierKey).(string)
	return value
}
