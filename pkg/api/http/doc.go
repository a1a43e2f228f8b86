// Package http provides the browser-facing HTTP server.
//
// The server exposes:
//   - The cheque list page and the add/delete form actions
//   - Health checks
//   - Prometheus metrics
//
// Backend failures are logged and degrade to an empty list or a no-op;
// they never change the status code of the frontend's own responses.
package http
