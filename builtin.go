package main

import (
	"encoding/hex"
	"sort"

	"github.com/google/gopacket/macs"
)

// builtinDatabase builds a Database from the IEEE table compiled into
// gopacket, for hosts without a udev hwdb.
func builtinDatabase() *Database {
	db := &Database{
		Records: make([]OUIRecord, 0, len(macs.ValidMACPrefixMap)),
	}
	for prefix, vendor := range macs.ValidMACPrefixMap {
		db.Records = append(db.Records, OUIRecord{
			MACPrefix: hex.EncodeToString(prefix[:]),
			Vendor:    vendor,
		})
	}

	sort.Slice(db.Records, func(i, j int) bool {
		return db.Records[i].MACPrefix < db.Records[j].MACPrefix
	})
	return db
}
