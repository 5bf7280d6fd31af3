package main

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func loadColumn(path, column string) ([]string, error) {
	abs, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tableName := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	query := fmt.Sprintf("CREATE TEMP TABLE \"%s\" AS SELECT * FROM read_csv(\"%s\", nullstr = ['null', \"''\"], null_padding = true)", tableName, abs)
	if _, err = db.Exec(query); err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf("SELECT \"%s\" FROM \"%s\"", column, tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var val any
		if err := rows.Scan(&val); err != nil {
			return nil, err
		}
		values = append(values, coerce(val))
	}
	return values, rows.Err()
}

// coerce renders a scanned cell as text. NULL becomes the empty string,
// which the scoring functions treat as no signal.
func coerce(val any) string {
	if val == nil {
		return ""
	}
	return fmt.Sprintf("%v", val)
}

func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if filepath.Ext(abs) != ".csv" {
		return "", fmt.Errorf("not a CSV file: %s", abs)
	}
	return abs, nil
}
