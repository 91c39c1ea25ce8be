// Package session persists the signed-in user's token and profile between
// runs, the way a browser keeps them in local storage.
//
// Two stores are provided: FileRepository keeps a session.json written
// atomically, SQLiteRepository keeps token and user rows in a key/value
// table. Both satisfy transport.TokenSource and read the store on every
// call, so every request sees the current session.
//
// # Usage
//
//	repo := session.NewFileRepository(dir)
//	s, err := repo.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	if s.IsEmpty() {
//	    // not signed in
//	}
//
// Only the auth flow writes a session. Other readers treat the store as
// read-only.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package session
