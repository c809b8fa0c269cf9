// Package access decides whether a page path may be shown for the current
// session state.
//
// One [Policy] is shared by every entry point: the server gate that runs
// before static pages are served and the client navigation service that
// runs after the stored session is restored. Routes are classified by
// prefix from an injected [RouteTable]; admin is checked before protected,
// protected before public.
//
// [Guard] wraps a Policy for callers that navigate on redirects and makes
// re-evaluation of an already redirected (path, state) pair a no-op.
package access
