// Package api defines the splitledger.v1 RPC surface: procedure names,
// request and response messages, and typed Connect clients.
//
// Messages are plain Go structs carried as JSON by Codec. Amounts are
// decimal strings ("90.00"); requests also accept JSON numbers.
package api
