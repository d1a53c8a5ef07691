package logging

import "context"

type ctxAttrsKey struct{}

// ContextWith returns a copy of ctx carrying extra key-value pairs that every
// Logger adds to records logged with that ctx.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := contextArgs(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, ctxAttrsKey{}, merged)
}

func contextArgs(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	args, _ := ctx.Value(ctxAttrsKey{}).([]any)
	return args
}

// withContextArgs prepends the pairs carried by ctx to args.
func withContextArgs(ctx context.Context, args []any) []any {
	extra := contextArgs(ctx)
	if len(extra) == 0 {
		return args
	}
	out := make([]any, 0, len(extra)+len(args))
	out = append(out, extra...)
	return append(out, args...)
}
