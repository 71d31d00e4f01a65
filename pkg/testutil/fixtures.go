package testutil

import (
	"github.com/google/uuid"
)

// Fixed identifiers for deterministic testing
var (
	TestTenantID  = uuid.MustParse("00000000-0000-0000-0000-000000000010").String()
	TestLenderID1 = uuid.MustParse("00000000-0000-0000-0000-000000000101").String()
	TestLenderID2 = uuid.MustParse("00000000-0000-0000-0000-000000000102").String()
)
