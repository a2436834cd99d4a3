/*
 * Copyright 2024 The jscan Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package jscan is a byte-level JSON scanning core: a SIMD-style predicate
// scanner, a zero-allocation tokenizer and a skip engine that fast-forwards
// past a JSON value without materializing it.
//
// jscan does not build an AST and does not convert numeric tokens to Go
// numbers; it hands back typed slices into the input buffer and leaves
// interpretation to the caller. It is aimed at predicate-pushdown filters,
// log scanners and document-projection layers that need to look at a lot of
// JSON without paying to parse all of it.
//
// The package is organized around five pieces, leaves first: the SIMD
// kernel (Search), the predicate combinators (Eq, InRange, Not, Or, ExecOf,
// DualExecOf), the byte Cursor, the Tokenizer, and SkipValue. All of it is
// synchronous and allocation-free on the scanning path; a read-only input
// buffer may be scanned by any number of Tokenizers concurrently.
package jscan
