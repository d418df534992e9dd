// Package main provides the schemawatch CLI.
package main

import (
	"os"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli"

	// Register SQL dialects.
	_ "github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse/crdbparse"
	_ "github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse/myparse"
	_ "github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse/pgparse"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
