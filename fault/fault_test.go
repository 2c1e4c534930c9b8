// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/licium/liciumd/fault"
)

// test errors
var (
	errExistsOne        = fault.ExistsError("exists one")
	errExistsTwo        = fault.ExistsError("exists two")
	errAuthorizationOne = fault.AuthorizationError("authorization one")
	errInvalidOne       = fault.InvalidError("invalid one")
	errNotFoundOne      = fault.NotFoundError("not found one")
	errProcessOne       = fault.ProcessError("process one")
)

func TestErrorClassification(t *testing.T) {

	errorList := []struct {
		err           error
		exists        bool
		authorization bool
		invalid       bool
		notFound      bool
		process       bool
	}{
		{errExistsOne, true, false, false, false, false},
		{errExistsTwo, true, false, false, false, false},
		{errAuthorizationOne, false, true, false, false, false},
		{errInvalidOne, false, false, true, false, false},
		{errNotFoundOne, false, false, false, true, false},
		{errProcessOne, false, false, false, false, true},
		{fault.TokenAlreadyExists, true, false, false, false, false},
		{fault.ContentAlreadyRegistered, true, false, false, false, false},
		{fault.WrongPaymentDenomination, false, true, false, false, false},
		{fault.InsufficientPayment, false, true, false, false, false},
		{fault.NoFundsProvided, false, true, false, false, false},
		{fault.TokenNotFound, false, false, false, true, false},
		{fault.LicensingTermsNotFound, false, false, false, true, false},
		{fault.InvalidCursor, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected IsErrExists: %v for: %q", i, e.exists, err)
		}
		if fault.IsErrAuthorization(err) != e.authorization {
			t.Errorf("%d: expected IsErrAuthorization: %v for: %q", i, e.authorization, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected IsErrInvalid: %v for: %q", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected IsErrNotFound: %v for: %q", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected IsErrProcess: %v for: %q", i, e.process, err)
		}
	}
}
