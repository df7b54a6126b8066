// Package service orchestrates the core components of the
// number registry — the domain set, the event feed, and metrics.
//
// It provides a clean API for inserting, deleting, and
// querying numbers, decoupled from network transports like gRPC.
package service
