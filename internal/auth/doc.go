// Package auth provides operator identity for the panel gateway.
//
// It covers three concerns:
//
//   - Credential storage: operators live in SQLite with Argon2id PIN
//     hashes in PHC string format. CredentialStore verifies logins in
//     constant work: unknown usernames are charged the same argon2
//     cost as known ones.
//
//   - Session tokens: TokenService issues HS256 JWTs carrying the
//     operator's username and role. Tokens are self-contained and
//     short-lived; there is no revocation list.
//
//   - Bootstrap: SeedAdmin creates the first admin operator with a
//     random PIN on an empty database.
//
// Authorisation policy (which role may run which command) is decided
// by the gateway package, not here; this package only establishes who
// the caller is and what role their token carries.
package auth
