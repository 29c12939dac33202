// Package utils provides common utility functions for the foodfunk application.
// It includes the conversions used to decode raw property values read from
// files, databases and storage objects into typed table values.
package utils
