// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - User: an account that can sign in; admins create users and groups
//   - Group: a fixed set of members sharing expenses
//   - Member: a user as seen from inside a group (id + username)
//   - Expense: an outlay by one member, split equally across the group
//   - Payment: a transfer between two members settling part of a balance
//
// # Design Principles
//
// 1. **Append-only ledger**: expenses and payments are never edited or deleted
// 2. **Fixed-point money**: amounts are decimal.Decimal with two decimal places,
//    stored as integer minor units; float64 never touches money
// 3. **Avoid circular references**: relationships use ID strings, not pointers
// 4. **Derived balances**: balances are computed on demand and never stored
package models
