// Package integrity provides health checks for the property sources.
//
// Unlike the 'properties' package which serves resolved values, this package
// validates the backends the values come from.
//
// # Checks Provided
//
//   - Storage: Checks that the shared property file exists in the bucket and defines every table.
//   - Database: Validates that property_overrides has the columns database sources read.
//   - Sources: Loads every source of every table and lists entries that fail to decode.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true to upload defaults).
//   - GET /integrity/database : Runs schema check (supports ?fix=true to migrate).
//   - GET /integrity/sources : Runs source validation.
package integrity
