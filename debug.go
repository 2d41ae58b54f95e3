//go:build debugSmallargs
// +build debugSmallargs

package smallargs

import (
	"log"
)

var debugging = true

func debugf(fmt string, args ...interface{}) {
	log.Printf(fmt, args...)
}
func debug(args ...interface{}) {
	log.Println(args...)
}
