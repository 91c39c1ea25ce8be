// Package folio is a client for the portfolio CMS API. It keeps a local copy
// of every resource (skills, projects, experiences, certifications, the about
// profile and contact responses) together with the sign-in state, and can be
// embedded in other Go programs or driven through the folio CLI.
//
// # Basic Usage
//
//	cfg := folio.Config{
//	    APIURL:     "https://api.example.com",
//	    SessionDir: "/home/me/.folio",
//	}
//
//	c, err := folio.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	if err := c.Store().Skills().Fetch(ctx); err != nil {
//	    log.Printf("skills: %v", err)
//	}
//	for _, s := range c.Store().Skills().State().Items {
//	    fmt.Println(s.SkillName)
//	}
//
// # Sessions
//
// The bearer token and user are kept in a [session.Repository], a JSON file
// by default or a SQLite database when SessionStore is "sqlite". A stored
// token is adopted at construction without a network round trip; set
// VerifyOnStart to have it checked against the server in the background.
// [Client.Watch] follows sign-ins and sign-outs made by other processes.
//
// # State
//
// All state lives in one [Store]. Operations may be called from any
// goroutine; every transition is applied under the store lock and handed,
// with the state it produced, to the subscribers registered with
// [WithSubscriber].
package folio
