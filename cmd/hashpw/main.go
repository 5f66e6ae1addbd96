// Command hashpw prints the bcrypt hash of a password, for building
// AUTH_OPERATORS entries.
//
//	go run ./cmd/hashpw 'my-password'
package main

import (
	"fmt"
	"os"

	"adslot-panel/internal/pkg/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashing failed:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
