// Package testing prepares the process for package tests.
//
// Import it for its side effects from any _test.go file:
//
//	import (
//	  _ "liyu1981.xyz/home-sensor-api/pkg/testing"
//	)
//
// Tests then run from the project root (so logs/ lands in one place) and
// default to the shared in-memory database.
package testing

import (
	"os"
	"path"
	"runtime"
)

// dbTypeEnvKey mirrors common.EnvKeyDBType; common imports this package in its tests.
const dbTypeEnvKey = "APP_DB_TYPE"

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}

	if _, found := os.LookupEnv(dbTypeEnvKey); !found {
		_ = os.Setenv(dbTypeEnvKey, "memory")
	}
}
