// Package web hosts the HTTP surface of the shopfront demo: the page
// handlers, the route table, and the embedded templates and static assets.
// Every route runs under the observability middleware chain from
// pkg/middleware.
package web
