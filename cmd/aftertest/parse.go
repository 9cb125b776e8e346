// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/aftertest/internal/diagfmt"
	"fillmore-labs.com/aftertest/internal/directive"
	"fillmore-labs.com/aftertest/transform"
)

var parseCmd = &cobra.Command{
	Use:   "parse <directive>",
	Short: "Show how a cleanup directive is resolved",
	Example: `  aftertest parse 'resetFixtures(t)'
  aftertest parse 'func() { db.Close() }'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		spec, ds := transform.ParseSpec(text)
		if len(ds) > 0 {
			p := diagfmt.NewPrinter(cmd.ErrOrStderr(), diagfmt.Options{Color: useColor(stderrFile(cmd))})
			if err := p.Print(nil, "directive", nil, ds); err != nil {
				return err
			}

			return errFindings
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n  invocation: %s\n", directive.Describe(spec), spec.Invocation())

		return nil
	},
}
