package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabase_Lookup(t *testing.T) {
	db := &Database{Records: []OUIRecord{
		{MACPrefix: "123456", Vendor: "Acme Corp"},
		{MACPrefix: "1234", Vendor: "Acme Parent"},
		{MACPrefix: "abcdef", Vendor: "Other"},
		{MACPrefix: "123456", Vendor: "Acme Corp"},
	}}

	tests := map[string]struct {
		query string
		want  []string
	}{
		"full mac keeps database order and duplicates": {
			query: "123456abcdef",
			want:  []string{"Acme Corp", "Acme Parent", "Acme Corp"},
		},
		"shorter query than prefix": {
			query: "1234",
			want:  []string{"Acme Parent"},
		},
		"no match": {
			query: "ffffff",
			want:  []string{},
		},
		"empty query": {
			query: "",
			want:  []string{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, db.Lookup(test.query))
		})
	}
}

func TestDatabase_Lookup_EmptyPrefixMatchesEverything(t *testing.T) {
	db := &Database{Records: []OUIRecord{
		{MACPrefix: "", Vendor: "Anyone"},
		{MACPrefix: "00", Vendor: "Zeroes"},
	}}

	assert.Equal(t, []string{"Anyone"}, db.Lookup("ffeedd"))
	assert.Equal(t, []string{"Anyone", "Zeroes"}, db.Lookup("001122"))
	assert.Equal(t, []string{"Anyone"}, db.Lookup(""))
}

func TestDatabase_Matches(t *testing.T) {
	db := &Database{Records: []OUIRecord{
		{MACPrefix: "aa", Vendor: "A"},
		{MACPrefix: "bb", Vendor: "B"},
	}}

	assert.Equal(t, []OUIRecord{{MACPrefix: "bb", Vendor: "B"}}, db.Matches("bbcc"))
	assert.Empty(t, (&Database{}).Matches("aa"))
}
