/*
Package measure provides ready-made monoids and measured instances for
finger trees.

A finger tree is parameterized over a measure type and a monoid combining
measures; the choice of measure decides which container the tree behaves
as. This package collects the standard choices: element counts for
sequences and deques, greatest keys for ordered sequences, and maximum
priorities for priority queues.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package measure
