package utils

import "context"

type namespaceKey struct{}

// NewContext returns a copy of ctx carrying ns.
func NewContext(ctx context.Context, ns *Namespace) context.Context {
	return context.WithValue(ctx, namespaceKey{}, ns)
}

// FromContext returns the namespace stored by NewContext, or InsomniaCureUtils.
func FromContext(ctx context.Context) *Namespace {
	if ns, ok := ctx.Value(namespaceKey{}).(*Namespace); ok && ns != nil {
		return ns
	}
	return InsomniaCureUtils
}
