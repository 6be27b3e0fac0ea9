package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests run from the module root so relative paths (logs/, .env, *.db) land
	// in one place.
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/inventory-alert-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
