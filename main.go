/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/kylebrw/slang/cmd/slang"
)

func main() {
	slang.Execute()
}
