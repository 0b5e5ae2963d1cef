// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for the classroom and student tables and
// translates the roster search filter into SQL over the students/classrooms
// join. Student updates are guarded by a version column.
package persistence
