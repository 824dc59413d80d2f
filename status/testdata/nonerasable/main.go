//go:build ignore

// This program does not compile: record is not an integer type, so it does
// not satisfy status.Erasable and cannot be stored in an erased payload.
//
//	$ go run ./status/testdata/nonerasable
//	... record does not satisfy status.Erasable
package main

import "github.com/kbukum/statuscode/status"

type record struct {
	code int
	path string
}

func main() {
	var c status.StatusCode[record]
	_ = status.EraseCode(c)
}
