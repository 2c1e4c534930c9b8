// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the command and query surface of the registry
//
// a single inbound command is dispatched to exactly one workflow; the
// workflow stages all of its writes in one transaction and either
// commits them together or none at all.  Queries are read-only and
// never touch the workflows.
//
// ownership transfer and approval commands are delegated wholesale to
// an external ownership module; the registry only applies the owner
// and approval field changes through its authority surface.
package contract
