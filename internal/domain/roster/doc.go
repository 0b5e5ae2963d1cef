// Package roster defines the student roster domain: classrooms, students, the
// free-text search filter shared by listing and autocomplete, and the
// contracts implemented by the application and infrastructure layers.
package roster
