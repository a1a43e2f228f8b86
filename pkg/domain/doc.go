// Package domain defines the cheque record exchanged with the backend service.
package domain
