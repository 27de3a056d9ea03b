// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shq_test

import (
	"fmt"
	"log"

	"github.com/unixdj/shq"
)

func ExampleQuote() {
	for _, w := range []string{
		"safe-word",
		"Work stuff",
		"10$",
		"a'b",
		"don't panic",
		"",
	} {
		q, err := shq.Quote(w)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(q)
	}
	// Output:
	// safe-word
	// Work\ stuff
	// 10\$
	// a\'b
	// "don't panic"
	// ''
}

func ExampleQuoteDialect() {
	// The bash dialect keeps control bytes out of the output.
	q, err := shq.QuoteDialect("tab\there", shq.Bash)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(q)
	// Output:
	// $'tab\there'
}

func ExampleMustQuote() {
	fmt.Println(shq.MustQuote("a b c") + " " + shq.MustQuote("~backup"))
	// Output:
	// 'a b c' \~backup
}
