// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

// Wrappers are stored in SQL columns as their bare value. A wrapper
// has no absent state, so scanning NULL is an error; scan into
// sql.Null of the wrapper for nullable columns.

// Value implements driver.Valuer with the bare value.
func (a AmountForFlags[F, U, R]) Value() (driver.Value, error) { return sqlValue(a.repr) }

// Scan implements sql.Scanner by scanning into the bare value.
func (a *AmountForFlags[F, U, R]) Scan(src any) error { return scanRepr(&a.repr, src) }

// Value implements driver.Valuer with the bare value.
func (id IDForFlags[F, U, R]) Value() (driver.Value, error) { return sqlValue(id.repr) }

// Scan implements sql.Scanner by scanning into the bare value.
func (id *IDForFlags[F, U, R]) Scan(src any) error { return scanRepr(&id.repr, src) }

// Value implements driver.Valuer with the bare value.
func (t InstantForFlags[F, U, R]) Value() (driver.Value, error) { return sqlValue(t.repr) }

// Scan implements sql.Scanner by scanning into the bare value.
func (t *InstantForFlags[F, U, R]) Scan(src any) error { return scanRepr(&t.repr, src) }

func sqlValue(repr any) (driver.Value, error) {
	return driver.DefaultParameterConverter.ConvertValue(repr)
}

func scanRepr[R any](dst *R, src any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", *dst)
	}
	var column sql.Null[R]
	if err := column.Scan(src); err != nil {
		return err
	}
	*dst = column.V
	return nil
}
