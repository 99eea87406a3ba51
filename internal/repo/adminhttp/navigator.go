package adminhttp

import "context"

// Navigator moves the operator to another console location, e.g. the login page
// after the session could not be refreshed.
type Navigator interface {
	Redirect(ctx context.Context, path string)
}

type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Redirect(ctx context.Context, path string) {
	if f == nil {
		return
	}
	f(ctx, path)
}
