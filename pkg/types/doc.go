// Package types defines the data model shared by the ldforge packages:
// property kinds, schema type definitions, the ordered JSON-LD record,
// validation issues, bulk results, configuration, and sentinel errors.
package types
