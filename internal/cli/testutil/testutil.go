// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// Fixture contents written by SetupTestProject.
const (
	// SchemaSQL alters users and creates orders.
	SchemaSQL = `CREATE TABLE orders (id int);
ALTER TABLE users ADD COLUMN age int;
DROP TABLE legacy;
`
	// UsersTS mentions the users change.
	UsersTS = `// Table altered: users
export interface User { id: number }
`
	// BillingTS mentions nothing.
	BillingTS = `export const billing = true;
`
)

// SetupTestProject creates a temporary project with a schema file, a config
// file and a few TypeScript sources. It returns the project directory.
//
//	schemawatch.yaml
//	db/schema.sql
//	src/users.ts
//	src/billing.ts
//	src/notes.md   (mentions a change but is not a candidate)
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	files := map[string]string{
		"schemawatch.yaml": "schema_path: db/schema.sql\n",
		"db/schema.sql":    SchemaSQL,
		"src/users.ts":     UsersTS,
		"src/billing.ts":   BillingTS,
		"src/notes.md":     "Table created: orders\n",
	}
	for rel, content := range files {
		path := filepath.Join(tmpDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", rel, err)
		}
	}

	return tmpDir
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
