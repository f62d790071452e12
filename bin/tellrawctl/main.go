// Copyright (C) 2026 The go-textnbt Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
tellrawctl is a command-line exerciser for the textnbt library.

	NAME
	tellrawctl

	SYNOPSIS
	tellrawctl [OPTIONS] <command>

	tellrawctl encodes text components into the tagged binary tree
	wire format used by the textnbt library.

	RETURN VALUE
	  Return EXIT_SUCCESS or EXIT_FAILURE
*/
package main

import (
	"os"

	"github.com/cybergarage/go-logger/log"
	"github.com/opencraftmc/textnbt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
