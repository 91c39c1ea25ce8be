// Package transport is the HTTP layer shared by every folio resource.
//
// One Client is bound to the API base URL. Resource returns a path-scoped
// view of it, so each resource module receives the same auth handling
// instead of building its own client:
//
//	client := transport.NewClient(transport.Config{BaseURL: url}, http.DefaultClient, tokens, logger)
//	skills := client.Resource("/api/skills")
//	var out []domain.Skill
//	err := skills.Get(ctx, "", &out)
//
// The bearer token is read from the TokenSource before every request, so a
// login or logout performed elsewhere is picked up on the next call. The
// client never retries, refreshes tokens or follows auth redirects: a
// failed call is returned as *Error carrying a Kind, the HTTP status and
// the server's message.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package transport
