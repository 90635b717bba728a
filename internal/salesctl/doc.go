// Package salesctl implements the admin command line for the sales data
// server: hashing passwords for the users file and seeding the Postgres
// credential store.
package salesctl
