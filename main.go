package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

const defaultDBPath = "/usr/lib/udev/hwdb.d/20-OUI.hwdb"

var errUsage = errors.New("usage: ouilookup [-db path] [-builtin] [-debug] <mac>")

func main() {
	err := run(context.Background(), os.Args[1:], os.Getenv("DB"), os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	color.New(color.FgRed).Fprintln(os.Stderr, err)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	os.Exit(1)
}

// run looks up the single MAC argument and writes one line per match to
// stdout. Nothing is written to stdout unless the database loaded.
func run(ctx context.Context, args []string, dsn string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ouilookup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("debug", false, "print debug log")
	dbPath := fs.String("db", defaultDBPath, "OUI database in udev hwdb format")
	builtin := fs.Bool("builtin", false, "use the OUI table compiled into the binary instead of -db")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	trace := func(format string, a ...interface{}) {
		if *debug {
			color.New(color.FgGreen).Fprintf(stderr, format+"\n", a...)
		}
	}

	var db *Database
	if *builtin {
		db = builtinDatabase()
	} else {
		var err error
		db, err = openDatabase(*dbPath, hwdbFormat)
		if err != nil {
			return err
		}
	}
	trace("%v", db)

	query := normalizeMAC(fs.Arg(0))
	trace("looking up %q", query)

	hist, closeHist, err := connectHistory(ctx, dsn)
	if err != nil {
		return err
	}
	defer closeHist()

	matches := db.Matches(query)
	trace("%d matches", len(matches))
	for _, m := range matches {
		trace("%v", m)
	}

	if err := hist.record(ctx, query, matches); err != nil {
		return err
	}

	for _, m := range matches {
		fmt.Fprintf(stdout, "%s\t%s\n", query, m.Vendor)
	}
	return nil
}
