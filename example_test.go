// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlayout_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrlayout"
	"github.com/unixdj/qrlayout/version"
)

func ExamplePlanLayout() {
	l, err := qrlayout.PlanLayout(420, "hello, world",
		qrlayout.Options{Level: version.Q})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(l.Spec.Version, l.Spec.Modules, l.Block)
	// Output: 1 21 20
}

func ExampleRender() {
	r := qrlayout.NewRaster(21)
	if err := qrlayout.Render(r, "01234567", qrlayout.Options{}); err != nil {
		log.Fatal(err)
	}
	// The finder patterns are in place, the center is empty.
	fmt.Println(r.Black(0, 0), r.Black(10, 10))
	// Output: true false
}
