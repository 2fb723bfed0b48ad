// Package psqlbuilder предоставляет squirrel builder, настроенный на
// PostgreSQL placeholders ($1, $2, ...).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert возвращает InsertBuilder с PostgreSQL placeholders
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Select возвращает SelectBuilder с PostgreSQL placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Update возвращает UpdateBuilder с PostgreSQL placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DeleteBuilder с PostgreSQL placeholders
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
