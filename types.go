package main

import "fmt"

// OUIRecord is a single entry of the OUI database.
type OUIRecord struct {
	MACPrefix string
	Vendor    string
}

func (r OUIRecord) String() string {
	return fmt.Sprintf("%s, %s", r.MACPrefix, r.Vendor)
}

// Database holds the records in file order.
type Database struct {
	Records []OUIRecord
}

func (db *Database) String() string {
	return fmt.Sprintf("An OUI DB of %d records", len(db.Records))
}

// Format describes the fixed-width prefixes of the MAC and vendor lines.
type Format struct {
	MACSkip    int
	VendorSkip int
}

// hwdbFormat matches the udev hwdb layout:
//
//	OUI:000000*
//	 ID_OUI_FROM_DATABASE=Officially Xerox
var hwdbFormat = Format{
	MACSkip:    len("OUI:"),
	VendorSkip: len(" ID_OUI_FROM_DATABASE="),
}
