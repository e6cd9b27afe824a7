package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "journey_"

const (
	TABLE_JOURNAL_ENTRY = TableName("journal_entry")
	TABLE_USER          = TableName("user")
	TABLE_SESSION       = TableName("session")
)
