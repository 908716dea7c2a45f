package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// openDatabase reads the OUI database stored at path.
func openDatabase(path string, f Format) (*Database, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening oui database %s", path)
	}
	defer fh.Close()

	db, err := readDatabase(fh, f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing oui database %s", path)
	}
	return db, nil
}

// readDatabase parses r into a Database. Reaching the end of r between two
// records is not an error; any other read failure aborts the whole load.
func readDatabase(r io.Reader, f Format) (*Database, error) {
	db := &Database{Records: []OUIRecord{}}

	reader := bufio.NewReader(r)
	for {
		record, err := readRecord(reader, f)
		if err == io.EOF {
			return db, nil
		}
		if err != nil {
			return nil, err
		}
		db.Records = append(db.Records, record)
	}
}

// readRecord skips blank and comment lines, then consumes one MAC line and
// the line right after it, whatever that line holds. It returns io.EOF only
// when the stream ends before a MAC line is found.
func readRecord(reader *bufio.Reader, f Format) (OUIRecord, error) {
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return OUIRecord{}, errors.Wrap(err, "reading mac line")
		}
		if line == "" {
			return OUIRecord{}, io.EOF
		}
		if line == "\n" || strings.HasPrefix(line, "#") {
			continue
		}

		record := OUIRecord{
			MACPrefix: parseMACLine(line, f.MACSkip),
		}

		// a missing vendor line leaves the vendor empty
		vendorLine, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return OUIRecord{}, errors.Wrap(err, "reading vendor line")
		}
		record.Vendor = parseVendorLine(vendorLine, f.VendorSkip)

		return record, nil
	}
}

// parseMACLine normalizes the text between skip and the first '*'.
func parseMACLine(line string, skip int) string {
	if len(line) <= skip {
		return ""
	}
	prefix := line[skip:]
	if i := strings.IndexByte(prefix, '*'); i >= 0 {
		prefix = prefix[:i]
	}
	return normalizeMAC(prefix)
}

// parseVendorLine returns the line past its fixed-width field, verbatim but
// without the line terminator. Lines too short for the field give "".
func parseVendorLine(line string, skip int) string {
	line = strings.TrimSuffix(line, "\n")
	if len(line) <= skip {
		return ""
	}
	return line[skip:]
}
