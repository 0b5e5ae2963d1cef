// Package models contains the GORM database models of the roster tables.
// They are kept apart from the domain entities and converted with
// ToDomain/FromDomain at the repository boundary.
package models
