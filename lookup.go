package main

import "strings"

// Matches returns every record whose prefix starts query, in database order.
// A record with an empty prefix matches any query.
func (db *Database) Matches(query string) []OUIRecord {
	matches := []OUIRecord{}
	for _, r := range db.Records {
		if strings.HasPrefix(query, r.MACPrefix) {
			matches = append(matches, r)
		}
	}
	return matches
}

// Lookup returns the vendors of all records matching query.
func (db *Database) Lookup(query string) []string {
	vendors := []string{}
	for _, r := range db.Matches(query) {
		vendors = append(vendors, r.Vendor)
	}
	return vendors
}
