// Package backend provides the HTTP client for the cheque backend service.
//
// The backend exposes three endpoints under a configurable base URL:
//   - GET  {base}/list    returns a JSON array of cheque records
//   - POST {base}/add     takes chequeNo and approvalGranted as query parameters
//   - POST {base}/remove  takes chequeNo as a form-encoded body
//
// Any status other than 200 is reported as a *StatusError.
package backend
