// Package country holds the country record type and the provider that
// retrieves records from the REST Countries API.
package country
