// Package http implements the HTTP transport layer of the replication
// endpoint.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as replica authentication, request
// tracing, access logging, and response compression are handled in this
// package before requests are delegated to the service layer.
package http
