// Package order contains the order aggregate: the primary fulfillment status
// machine plus the revision, payment, dispute, alteration, and refund
// sub-workflows it owns. Every mutation enters through an aggregate method that
// authorizes the acting party before touching state, and every accepted
// state-machine operation appends a timeline entry.
package order
