// Package guard flips the runtime into test mode on import, keeping
// tests from starting servers or workers against live backends.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("CATALOGUE_TEST_MODE") == "" {
			_ = os.Setenv("CATALOGUE_TEST_MODE", "1")
		}
	})
}
