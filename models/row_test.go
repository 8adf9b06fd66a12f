// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow_ColumnsAligned(t *testing.T) {
	for _, table := range AllTableNames() {
		t.Run(table.String(), func(t *testing.T) {
			row, err := NewRow(table)
			require.NoError(t, err)

			assert.Equal(t, table, row.Table())
			cols := row.Columns()
			require.NotEmpty(t, cols)
			assert.Equal(t, "id", cols[0])
			assert.Len(t, row.Values(), len(cols))
			assert.Len(t, row.ScanTargets(), len(cols))
		})
	}
}

func TestNewRow_Unknown(t *testing.T) {
	_, err := NewRow("transact")
	require.ErrorIs(t, err, ErrUnknownTableName)
}

func TestParseTableName(t *testing.T) {
	table, err := ParseTableName("invoice_line")
	require.NoError(t, err)
	assert.Equal(t, InvoiceLineTable, table)
	assert.True(t, table.IsRemote())

	table, err = ParseTableName("item")
	require.NoError(t, err)
	assert.False(t, table.IsRemote())

	_, err = ParseTableName("")
	require.ErrorIs(t, err, ErrUnknownTableName)
}

func TestReferencesTo_PointAtKnownTables(t *testing.T) {
	for _, target := range []TableName{NameTable, ItemTable, UnitTable} {
		for _, ref := range ReferencesTo(target) {
			row, err := NewRow(ref.Table)
			require.NoError(t, err)
			assert.Contains(t, row.Columns(), ref.Column)
		}
	}
}

func TestRemoteAction_BufferAction(t *testing.T) {
	tests := []struct {
		action RemoteAction
		want   SyncBufferAction
	}{
		{RemoteActionInsert, SyncBufferActionUpsert},
		{RemoteActionUpdate, SyncBufferActionUpsert},
		{RemoteActionDelete, SyncBufferActionDelete},
		{RemoteActionMerge, SyncBufferActionMerge},
	}
	for _, tt := range tests {
		got, err := tt.action.BufferAction()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := RemoteAction("upsert").BufferAction()
	require.Error(t, err)
}
