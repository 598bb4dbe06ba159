package dynamo

import (
	"fmt"
	"time"
)

// Single-table layout. The table has a string hash key PK and a string range
// key SK; see EnsureTable.
//
//	entity         PK                 SK
//	Account        ACCOUNT#{email}    PROFILE
//	WorkflowEntry  WORKFLOW#{email}   ENTRY#{timestamp}#{id}
const (
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "entity_type"

	EntityTypeAccount  = "Account"
	EntityTypeWorkflow = "WorkflowEntry"
)

// Account keys: PK=ACCOUNT#{email}, SK=PROFILE
func accountPK(email string) string {
	return fmt.Sprintf("ACCOUNT#%s", email)
}

func accountSK() string {
	return "PROFILE"
}

// WorkflowEntry keys: PK=WORKFLOW#{email}, SK=ENTRY#{timestamp}#{id}
//
// The timestamp is rendered in UTC with a fixed-width layout so that sort keys
// compare in chronological order.
func workflowPK(email string) string {
	return fmt.Sprintf("WORKFLOW#%s", email)
}

func workflowSK(ts time.Time, id string) string {
	return fmt.Sprintf("%s%s#%s", workflowPrefix(), ts.UTC().Format(sortableTime), id)
}

func workflowPrefix() string {
	return "ENTRY#"
}

const sortableTime = "2006-01-02T15:04:05.000000000Z"
