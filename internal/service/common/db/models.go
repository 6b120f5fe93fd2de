/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package db

// Model is implemented by every struct persisted through the generic repository helpers.
type Model interface {
	PrimaryKey() string
	TableName() string
	OnConflict() string
}
