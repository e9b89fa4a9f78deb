// Package sqldump extracts raw row tuples from a legacy phpMyAdmin-style
// SQL dump. It is not a SQL parser: statements are located by pattern and
// tuples split on literal boundaries, exactly as the legacy tooling did.
package sqldump

import (
	"log"
	"regexp"
	"strings"
)

var fieldCleaner = strings.NewReplacer("(", "", ")", "", "'", "")

// ExtractInserts returns the row tuples of every
// INSERT INTO `table` (...) VALUES (...),(...); statement for the given
// legacy table, in file order. Each tuple becomes a slice of trimmed fields
// with parentheses and single quotes stripped; the literal NULL marker is kept
// as text. Zero matches is a valid empty result.
//
// The VALUES body is split on the literal "),(" boundary and fields on bare
// commas. Values that themselves contain "),(", commas, parens or quotes do
// not round-trip; known limitation of the legacy dump format, kept on purpose
// so the same historical rows import as before.
func ExtractInserts(sqlContent, tableName string) [][]string {
	pattern := regexp.MustCompile("(?is)INSERT INTO `" + regexp.QuoteMeta(tableName) + "` \\((.*?)\\) VALUES (.*?);")
	matches := pattern.FindAllStringSubmatch(sqlContent, -1)
	if len(matches) == 0 {
		log.Printf("WARN: no INSERT data found for table %s", tableName)
		return nil
	}

	var records [][]string
	for _, m := range matches {
		for _, tuple := range strings.Split(m[2], "),(") {
			cleaned := fieldCleaner.Replace(tuple)
			fields := strings.Split(cleaned, ",")
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
			records = append(records, fields)
		}
	}

	log.Printf("Found %d records for table %s", len(records), tableName)
	return records
}
