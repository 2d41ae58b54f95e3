//go:build !debugSmallargs
// +build !debugSmallargs

package smallargs

var debugging = false

func debugf(fmt string, args ...interface{}) {}
func debug(args ...interface{})              {}
