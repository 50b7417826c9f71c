package main

import (
	"fmt"

	"github.com/vikdevelop/bintrans/locale"
)

// Set with -ldflags "-X main.version=..." at release time.
var version = "1.0"

const (
	license = "GPL-3.0"
	website = "https://github.com/vikdevelop/BinaryTranslator"
)

func (a *app) runVersion() int {
	p := a.tr.Printer()
	fmt.Fprintln(a.stdout, p.Sprintf(locale.KeyVersionLine, p.Sprintf(locale.KeyAppName), version))
	fmt.Fprintln(a.stdout, p.Sprintf(locale.KeyAppDescription))
	fmt.Fprintln(a.stdout, p.Sprintf(locale.KeyVersionLicense, license))
	fmt.Fprintln(a.stdout, p.Sprintf(locale.KeyVersionWebsite, website))
	return 0
}
