// Package monitor implements an optional background probe of the cheque backend.
//
// The monitor periodically pings the backend, keeps the latest result, feeds
// the backend-up gauge and logs reachability transitions. It never affects
// the frontend's own /health response.
package monitor
