package artic

import (
	"os"
	"testing"

	"arttable/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.DiscardLogs()
	os.Exit(m.Run())
}
