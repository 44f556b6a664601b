package querybuilder

import (
	"fmt"
	"strings"
)

// ColumnDef is one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name        string
	Type        string
	Constraints string
}

type CreateTableBuilder struct {
	table       string
	ifNotExists bool
	columns     []ColumnDef
}

func CreateTable(table string) *CreateTableBuilder {
	return &CreateTableBuilder{table: table}
}

func (b *CreateTableBuilder) IfNotExists(v bool) *CreateTableBuilder {
	b.ifNotExists = v
	return b
}

func (b *CreateTableBuilder) Column(name, typ, constraints string) *CreateTableBuilder {
	b.columns = append(b.columns, ColumnDef{Name: name, Type: typ, Constraints: constraints})
	return b
}

func (b *CreateTableBuilder) ToSQL() (string, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", fmt.Errorf("create table name is required")
	}
	if len(b.columns) == 0 {
		return "", fmt.Errorf("create table columns are required")
	}

	var buf strings.Builder
	buf.WriteString("CREATE TABLE ")
	if b.ifNotExists {
		buf.WriteString("IF NOT EXISTS ")
	}
	buf.WriteString(b.table)
	buf.WriteString(" (")
	for i, c := range b.columns {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Type) == "" {
			return "", fmt.Errorf("column %d needs a name and a type", i)
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(Ident(c.Name))
		buf.WriteString(" ")
		buf.WriteString(c.Type)
		if c.Constraints != "" {
			buf.WriteString(" ")
			buf.WriteString(c.Constraints)
		}
	}
	buf.WriteString(")")

	return buf.String(), nil
}

func DropTable(table string, ifExists bool) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("drop table name is required")
	}
	if ifExists {
		return "DROP TABLE IF EXISTS " + table, nil
	}
	return "DROP TABLE " + table, nil
}

func CreateSchema(schema string) (string, error) {
	if strings.TrimSpace(schema) == "" {
		return "", fmt.Errorf("schema name is required")
	}
	return "CREATE SCHEMA IF NOT EXISTS " + Ident(schema), nil
}
