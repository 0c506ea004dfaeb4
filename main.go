// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/wr1/golam/cli"
	"github.com/wr1/golam/logging"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, nil); err != nil {
		logging.NewLogger(os.Stderr, logging.LevelInfo).Error("command failed", "error", err)
		os.Exit(1)
	}
}
