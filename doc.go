/*
 * Copyright 2022 The Gremlins Authors
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

/*
Ferox is a mutation testing engine for Noir and Solidity projects.
It discovers mutable operator tokens in a source tree, generates a mutant
for each one, rebuilds and retests the project against every mutant in an
isolated workspace, and reports which mutants the test suite failed to
catch.

Usage

To scan a project for mutable tokens without running any test:

	$ ferox scan --source-path ./circuits

To run a full mutation test pass:

	$ ferox mutate --source-path ./circuits --language noir

The target language defaults to noir; solidity is also supported:

	$ ferox mutate --language solidity --source-path ./contracts

Ferox will classify each mutant as one of:
 - SURVIVED: the test suite passed against the mutated program; a gap.
 - KILLED: the test suite failed against the mutated program; caught.
 - UNBUILDABLE: the mutated program failed to build, or its test run
   terminated in a way that isn't an ordinary test failure.

Configuration

Ferox uses Viper (https://github.com/spf13/viper) for configuration.
Options can be passed, in order of precedence:

 - specific command flags
 - environment variables
 - configuration file

Environment variables follow the syntax:

	FEROX_<FLAG NAME>

in which every dash in the option name must be replaced with an underscore.

Example:

	$ FEROX_RANDOM=true ferox mutate

The configuration file must be named .ferox.yaml and can be placed in one
of the following folders (searched in this order, first match wins):

 - /etc/ferox (not on Windows)
 - $XDG_CONFIG_HOME/ferox/ferox (or ~/.config/ferox/ferox)
 - $HOME/.ferox
 - the current folder
*/
package ferox
