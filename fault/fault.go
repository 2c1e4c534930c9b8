// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - a record that must be unique is already present
	ExistsError GenericError

	// AuthorizationError - payment or permission checks failed
	AuthorizationError GenericError

	// InvalidError - invalid data supplied or decoded
	InvalidError GenericError

	// NotFoundError - a record that must exist is missing
	NotFoundError GenericError

	// ProcessError - an internal operation failed
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	CertificateFileAlreadyExists = InvalidError("certificate file already exists")
	ContentAlreadyRegistered     = ExistsError("content fingerprint already registered")
	ContractInfoNotFound         = NotFoundError("contract info not found")
	InsufficientPayment          = AuthorizationError("insufficient payment")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDenomination          = InvalidError("invalid denomination")
	InvalidExpiry                = InvalidError("invalid expiry")
	InvalidFingerprint           = InvalidError("invalid fingerprint")
	InvalidItem                  = InvalidError("invalid item")
	InvalidMessage               = InvalidError("invalid message")
	InvalidPrincipal             = InvalidError("invalid principal")
	InvalidStoredKey             = InvalidError("invalid stored key")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTokenId               = InvalidError("invalid token id")
	KeyFileAlreadyExists         = InvalidError("key file already exists")
	LicensingTermsNotFound       = NotFoundError("licensing terms not found")
	MissingParameters            = InvalidError("missing parameters")
	NoFundsProvided              = AuthorizationError("no funds provided")
	NotInitialised               = ProcessError("not initialised")
	RateLimiting                 = ProcessError("rate limiting")
	TokenAlreadyExists           = ExistsError("token already exists")
	TokenNotFound                = NotFoundError("token not found")
	TransactionInUse             = ProcessError("transaction already in use")
	Unauthorized                 = AuthorizationError("unauthorized")
	WrongPaymentDenomination     = AuthorizationError("wrong payment denomination")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e AuthorizationError) Error() string { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
