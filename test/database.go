package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh sqlite database in a directory that
// is cleaned up after the test. The suites connect to a new file in
// SetupTest, so no two tests ever share day records or transactions.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
