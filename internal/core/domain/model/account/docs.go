// Package account contains the Account aggregate and the Role value object.
//
// Accounts are the marketplace identities: customers, stores and couriers.
// The package also hosts the authorization gate (Authorize) used to guard
// role-scoped operations uniformly instead of scattering role comparisons
// across handlers.
package account
