// Command lake is the commerce lake CLI.
package main

import (
	"os"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/mattn/go-sqlite3"

	"commerce-lake/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
