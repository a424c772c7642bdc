// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AuthorizationError - caller is not the required owner, seller or administrator
	AuthorizationError GenericError

	// BidError - a bid was below the current acceptable minimum
	BidError GenericError

	// InvalidError - malformed or missing input, detected before any ledger call
	InvalidError GenericError

	// NotFoundError - referenced item does not exist
	NotFoundError GenericError

	// PausedError - the ledger pause flag blocks the action
	PausedError GenericError

	// ProcessError - internal processing failure
	ProcessError GenericError

	// RejectedError - the ledger refused or reverted the operation; opaque, not retriable
	RejectedError GenericError

	// StateError - operation does not match the current commit-reveal or listing state
	StateError GenericError

	// TransportError - the call could not reach the ledger
	TransportError GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyCommitted             = StateError("an unrevealed commitment already exists")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAuctionEnded                 = StateError("auction has already ended")
	ErrBidTooLow                    = BidError("bid is below the minimum acceptable bid")
	ErrCertificateFileAlreadyExists = ProcessError("certificate file already exists")
	ErrInvalidAddress               = InvalidError("address is invalid")
	ErrInvalidCoinAmount            = InvalidError("coin amount is invalid")
	ErrInvalidDigest                = InvalidError("digest is invalid")
	ErrInvalidDuration              = InvalidError("duration must be a positive number of seconds")
	ErrInvalidLevel                 = InvalidError("level must be a non-negative integer")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidPrice                 = InvalidError("price must be greater than zero")
	ErrInvalidStructPointer         = ProcessError("invalid struct pointer")
	ErrInvalidTokenId               = InvalidError("token id must be a positive integer")
	ErrKeyFileAlreadyExists         = ProcessError("key file already exists")
	ErrLedgerRejected               = RejectedError("ledger rejected the operation")
	ErrNoActiveCommit               = StateError("no commitment is pending for this identity")
	ErrNotConnected                 = TransportError("not connected to the ledger")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotListingOwner              = AuthorizationError("only the seller can delist")
	ErrNotLedgerOwner               = AuthorizationError("only the ledger owner can do this")
	ErrNotTokenOwner                = AuthorizationError("you are not the owner of this token")
	ErrOperationInProgress          = StateError("an operation on this resource is already in flight")
	ErrPaused                       = PausedError("the ledger is paused")
	ErrRequiredName                 = InvalidError("name is required")
	ErrRequiredSecret               = InvalidError("secret is required")
	ErrRequiredSpecies              = InvalidError("species is required")
	ErrTokenNotFound                = NotFoundError("token does not exist")
	ErrTokenNotListed               = NotFoundError("token is not listed")
	ErrTokenNotUnderAuction         = NotFoundError("token is not under auction")
	ErrTransferEventStreamEnded     = ProcessError("transfer event stream ended")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e BidError) Error() string           { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e PausedError) Error() string        { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RejectedError) Error() string      { return string(e) }
func (e StateError) Error() string         { return string(e) }
func (e TransportError) Error() string     { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrBid(e error) bool           { _, ok := e.(BidError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrPaused(e error) bool        { _, ok := e.(PausedError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRejected(e error) bool      { _, ok := e.(RejectedError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
func IsErrTransport(e error) bool     { _, ok := e.(TransportError); return ok }
