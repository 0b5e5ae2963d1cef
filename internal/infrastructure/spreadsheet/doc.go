// Package spreadsheet reads and writes student rosters as xlsx workbooks.
package spreadsheet
