//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// shared is the container reused by every integration test of a package.
var shared struct {
	once      sync.Once
	container *MongoDBContainer
	err       error
}

var dbSeq atomic.Uint64

// SetupTestMainWithMongoDB starts the shared container, runs the tests and tears it down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	shared.once.Do(func() {
		shared.container, shared.err = SetupMongoDB(ctx)
	})
	if shared.err != nil {
		panic(shared.err)
	}

	code := m.Run()

	if err := shared.container.Cleanup(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: shared MongoDB container not terminated: %v\n", err)
	}
	return code
}

// MongoTarget returns the shared container URI and a database name unique to t,
// so parallel tests never see each other's customers, carts or stock.
func MongoTarget(t *testing.T) (uri, database string) {
	t.Helper()
	if shared.container == nil {
		t.Fatal("shared MongoDB container not started; call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.container.URI, databaseName(t.Name())
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "\"", "_", "$", "_")

// databaseName stays well under MongoDB's 63 byte limit.
func databaseName(testName string) string {
	name := dbNameReplacer.Replace(testName)
	if len(name) > 48 {
		name = name[:48]
	}
	return fmt.Sprintf("%s_%d", name, dbSeq.Add(1))
}
