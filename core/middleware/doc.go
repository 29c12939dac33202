// Package middleware contains HTTP middleware for the query API.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting every endpoint.
//   - rayid: assigns every request a RayID, stored in the Fiber locals and
//     echoed in the X-Ray-ID response header for tracing.
package middleware
