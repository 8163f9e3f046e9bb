// Package responses holds the response payloads served by the API and the
// writer that encodes them with an exact application/json content type.
package responses
