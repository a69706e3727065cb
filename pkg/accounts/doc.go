// Package accounts is a small session service used to run the notes client
// against something real during development.
//
// It provides the two operations the client consumes plus a token check:
//
//	POST /register  {"email","password"}  201 {"id","email"}
//	POST /login     {"email","password"}  200 {"access_token","token_type","expires_in"}
//	GET  /me        Authorization: Bearer 200 {"id","email"}
//
// Failures are {"error","code"} with the status from pkg/errors. Passwords
// are bcrypt hashed, emails are stored lower-cased, and access tokens are
// HS256 JWTs whose subject is the account ID.
//
// Accounts live in memory (NewInMemoryRepository) or in Postgres
// (NewPostgresRepository, schema in migrations/notes_db.sql).
package accounts
