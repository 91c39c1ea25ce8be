// Package domain contains the portfolio records exchanged with the API.
//
// This package has no dependencies on infrastructure concerns (HTTP, file
// system, logging). Records mirror the server's JSON: identifiers live in
// "_id" and are assigned by the server, list-typed fields use StringList so
// a bare string from the server becomes a one-element list.
//
// # Records
//
//   - [Skill], [Project], [Experience], [Certification]: list resources
//   - [About]: the singleton profile shown on the public site
//   - [ContactResponse]: messages left through the contact form
//   - [User]: the signed-in administrator
package domain
